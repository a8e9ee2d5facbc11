package validate

import (
	"net/http/httptest"
	"strings"
	"testing"

	"pet-registry/internal/platform/respond"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	AuthKey string `loc:"header,auth-key" validate:"required"`
	Name    string `loc:"body,name" validate:"required"`
	Notes   string `loc:"body,notes"`
}

func TestStruct_ReportsEveryMissingFieldWithLoc(t *testing.T) {
	problems := Struct(sample{})

	require.Len(t, problems, 2)
	assert.Equal(t, respond.ValidationItem{
		Loc: []string{"header", "auth-key"}, Msg: "field required", Type: "value_error.missing",
	}, problems[0])
	assert.Equal(t, []string{"body", "name"}, problems[1].Loc)
}

func TestStruct_Valid(t *testing.T) {
	problems := Struct(sample{AuthKey: "k", Name: "Buddy"})
	assert.True(t, problems.Empty())
}

func TestInt(t *testing.T) {
	n, p := Int(Loc("body", "age"), " 3 ")
	assert.Nil(t, p)
	assert.Equal(t, 3, n)

	n, p = Int(Loc("body", "age"), "-2")
	assert.Nil(t, p)
	assert.Equal(t, -2, n)

	_, p = Int(Loc("body", "age"), "three")
	require.NotNil(t, p)
	assert.Equal(t, "type_error.integer", p.Type)
	assert.Equal(t, []string{"body", "age"}, p.Loc)
}

func TestParseForm_URLEncodedAndEmpty(t *testing.T) {
	r := httptest.NewRequest("POST", "/api/pets", strings.NewReader("name=Buddy&age=3"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	require.NoError(t, ParseForm(r))
	assert.Equal(t, "Buddy", r.PostForm.Get("name"))

	empty := httptest.NewRequest("PUT", "/api/pets/x", nil)
	require.NoError(t, ParseForm(empty))
	assert.Empty(t, empty.PostForm)
}

func TestParseForm_Multipart(t *testing.T) {
	body := "--XX\r\n" +
		"Content-Disposition: form-data; name=\"name\"\r\n\r\n" +
		"Buddy\r\n" +
		"--XX--\r\n"
	r := httptest.NewRequest("POST", "/api/pets", strings.NewReader(body))
	r.Header.Set("Content-Type", "multipart/form-data; boundary=XX")

	require.NoError(t, ParseForm(r))
	assert.Equal(t, "Buddy", r.PostForm.Get("name"))
}
