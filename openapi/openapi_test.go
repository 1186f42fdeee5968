package openapi_test

import (
	"context"
	"net/http"
	"testing"

	fv "github.com/Gobd/formvalidate"
	"github.com/Gobd/formvalidate/openapi"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormRequest(t *testing.T) {
	body, err := openapi.NewFormRequest(contactForm())
	require.NoError(t, err)
	require.True(t, body.Value.Required)

	for _, ct := range []string{openapi.ContentTypeForm, openapi.ContentTypeJSON} {
		mt := body.Value.Content.Get(ct)
		require.NotNil(t, mt, ct)
		schema := mt.Schema.Value
		assert.Equal(t, []string{"name", "email", "message"}, schema.Required)
		assert.Equal(t, "email", schema.Properties["email"].Value.Format)
		require.NotNil(t, schema.Properties["message"].Value.MaxLength)
		assert.Equal(t, uint64(500), *schema.Properties["message"].Value.MaxLength)
	}
}

func TestNewFormRequest_Errors(t *testing.T) {
	_, err := openapi.NewFormRequest(nil)
	assert.Error(t, err)

	_, err = openapi.NewFormRequest(fv.RuleSet{
		fv.Field("age", "age", fv.Is(fv.RuleMaxLength, "many")),
	})
	assert.Error(t, err)

	assert.Panics(t, func() { openapi.NewFormRequestMust(nil) })
}

func TestNewResponse(t *testing.T) {
	type thanks struct {
		ID int `json:"id"`
	}

	resps, err := openapi.NewResponse(map[string]openapi.Response{
		"204": {Desc: "Accepted"},
		"200": {Desc: "Stored", Bodies: []any{thanks{}}},
		"422": {Desc: "Rejected", Bodies: []any{fv.Report{}, thanks{}}},
	})
	require.NoError(t, err)

	noBody := resps.Value("204").Value
	assert.Equal(t, "Accepted", *noBody.Description)
	assert.Empty(t, noBody.Content)

	one := resps.Value("200").Value.Content.Get(openapi.ContentTypeJSON).Schema.Value
	assert.Contains(t, one.Properties, "id")

	many := resps.Value("422").Value.Content.Get(openapi.ContentTypeJSON).Schema.Value
	assert.Len(t, many.OneOf, 2)

	_, err = openapi.NewResponse(nil)
	assert.Error(t, err)
	assert.Panics(t, func() { openapi.NewResponseMust(nil) })
}

func TestDefaultResponses(t *testing.T) {
	doc := openapi.DocBase("Contact API", "", "1.0.0")
	openapi.Put(doc, "/contact/{id}", "replaceMessage", openapi.Endpoint{Form: contactForm()})

	op := doc.Paths.Value("/contact/{id}").Put
	require.NotNil(t, op)
	require.NotNil(t, op.Responses.Value("200"))

	report := op.Responses.Value("422").Value.Content.Get(openapi.ContentTypeJSON).Schema.Value
	assert.Contains(t, report.Properties, "valid")
	assert.Contains(t, report.Properties, "errors")
}

func TestAddPath(t *testing.T) {
	doc := openapi.DocBase("Contact API", "", "1.0.0")
	openapi.Post(doc, "/contact", "create", openapi.Endpoint{Form: contactForm()})
	openapi.Patch(doc, "/contact", "update", openapi.Endpoint{
		Responses: map[string]openapi.Response{"200": {Desc: "OK"}},
	})

	item := doc.Paths.Value("/contact")
	require.NotNil(t, item)
	assert.Equal(t, "create", item.Post.OperationID)
	assert.Equal(t, "update", item.Patch.OperationID)
	assert.Nil(t, item.Patch.RequestBody)
	assert.Nil(t, item.Put)

	openapi.AddPath("/contact", http.MethodGet, doc, &openapi3.Operation{OperationID: "list"})
	assert.Nil(t, doc.Paths.Value("/contact").Get)
}

func TestMarshal(t *testing.T) {
	doc := openapi.DocBase("Contact API", "", "1.0.0")
	openapi.Post(doc, "/contact", "create", openapi.Endpoint{Form: contactForm()})

	b, err := openapi.Marshal(context.Background(), doc)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"operationId":"create"`)
	assert.Contains(t, string(b), openapi.ContentTypeForm)

	_, err = openapi.Marshal(context.Background(), openapi.DocBase("", "", ""))
	assert.Error(t, err)
}
