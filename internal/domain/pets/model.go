package pets

import "time"

// FilterMyPets es el único valor de filtro reconocido por el listado.
const FilterMyPets = "my_pets"

// Pet es un registro de mascota. UserID es el email del dueño y no cambia
// después de la creación.
type Pet struct {
	ID         string
	Name       string
	AnimalType string
	Age        int
	CreatedAt  time.Time
	UserID     string
}
