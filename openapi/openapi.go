package openapi

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"slices"

	fv "github.com/Gobd/formvalidate"
	"github.com/getkin/kin-openapi/openapi3"
)

// Content types a form body may be submitted as.
const (
	ContentTypeForm = "application/x-www-form-urlencoded"
	ContentTypeJSON = "application/json"
)

// Response is one documented status of an endpoint. Bodies are Go values
// whose types become the JSON schema; several bodies are offered as oneOf.
type Response struct {
	Desc   string
	Bodies []any
}

// Endpoint describes a form submission for [Post], [Put] and [Patch].
type Endpoint struct {
	Summary     string
	Description string
	Form        fv.RuleSet          // request body fields
	Responses   map[string]Response // defaults to [DefaultResponses]
}

// NewFormRequestMust is like [NewFormRequest] but panics on error.
func NewFormRequestMust(rules fv.RuleSet) *openapi3.RequestBodyRef {
	body, err := NewFormRequest(rules)
	if err != nil {
		panic(err)
	}
	return body
}

// NewFormRequest documents a required request body holding the fields of
// rules. The same schema is offered form encoded and as a JSON object.
func NewFormRequest(rules fv.RuleSet) (*openapi3.RequestBodyRef, error) {
	if len(rules) == 0 {
		return nil, errors.New("no rules given")
	}
	schema, err := rules.Schema()
	if err != nil {
		return nil, fmt.Errorf("describe form: %w", err)
	}

	body := openapi3.NewRequestBody().WithRequired(true)
	body.Content = openapi3.Content{
		ContentTypeForm: openapi3.NewMediaType().WithSchemaRef(schema),
		ContentTypeJSON: openapi3.NewMediaType().WithSchemaRef(schema),
	}
	return &openapi3.RequestBodyRef{Value: body}, nil
}

// NewResponseMust is like [NewResponse] but panics on error.
func NewResponseMust(vs map[string]Response) *openapi3.Responses {
	resps, err := NewResponse(vs)
	if err != nil {
		panic(err)
	}
	return resps
}

// NewResponse builds the responses object of an operation. Keys are status
// codes such as "200" or "4xx".
func NewResponse(vs map[string]Response) (*openapi3.Responses, error) {
	if len(vs) == 0 {
		return nil, errors.New("no responses given")
	}

	opts := make([]openapi3.NewResponsesOption, 0, len(vs))
	for _, code := range slices.Sorted(maps.Keys(vs)) {
		resp, err := newResponse(vs[code])
		if err != nil {
			return nil, fmt.Errorf("response %s: %w", code, err)
		}
		opts = append(opts, openapi3.WithName(code, resp))
	}
	return openapi3.NewResponses(opts...), nil
}

func newResponse(r Response) (*openapi3.Response, error) {
	resp := openapi3.NewResponse().WithDescription(r.Desc)

	refs := make(openapi3.SchemaRefs, 0, len(r.Bodies))
	for _, body := range r.Bodies {
		ref, err := NewSchemaRefForValue(body)
		if err != nil {
			return nil, err
		}
		refs = append(refs, ref)
	}

	switch len(refs) {
	case 0:
	case 1:
		resp.Content = openapi3.NewContentWithJSONSchemaRef(refs[0])
	default:
		resp.Content = openapi3.NewContentWithJSONSchema(&openapi3.Schema{OneOf: refs})
	}
	return resp, nil
}

// DefaultResponses documents a successful submission and a rejected one
// carrying a [fv.Report].
func DefaultResponses() map[string]Response {
	return map[string]Response{
		"200": {Desc: "OK"},
		"422": {Desc: "Validation failed", Bodies: []any{fv.Report{}}},
	}
}

// DocBase returns an empty OpenAPI 3.0.3 document.
func DocBase(serviceName, description, version string) *openapi3.T {
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       serviceName,
			Description: description,
			Version:     version,
		},
		Paths: openapi3.NewPaths(),
	}
}

// setters assigns an operation to the slot of a path item for each method
// a form can be submitted with.
var setters = map[string]func(*openapi3.PathItem, *openapi3.Operation){
	http.MethodPost:  func(p *openapi3.PathItem, op *openapi3.Operation) { p.Post = op },
	http.MethodPut:   func(p *openapi3.PathItem, op *openapi3.Operation) { p.Put = op },
	http.MethodPatch: func(p *openapi3.PathItem, op *openapi3.Operation) { p.Patch = op },
}

// AddPath registers op under path for method. Methods other than POST, PUT
// and PATCH are ignored.
func AddPath(path, method string, s *openapi3.T, op *openapi3.Operation) {
	set, ok := setters[method]
	if !ok {
		return
	}
	item := s.Paths.Value(path)
	if item == nil {
		item = &openapi3.PathItem{}
	}
	set(item, op)
	s.Paths.Set(path, item)
}

func addEndpoint(doc *openapi3.T, path, method, operationID string, ep Endpoint) {
	op := openapi3.NewOperation()
	op.OperationID = operationID
	op.Summary = ep.Summary
	op.Description = ep.Description
	if len(ep.Form) > 0 {
		op.RequestBody = NewFormRequestMust(ep.Form)
	}

	responses := ep.Responses
	if len(responses) == 0 {
		responses = DefaultResponses()
	}
	op.Responses = NewResponseMust(responses)

	AddPath(path, method, doc, op)
}

// Post registers a POST endpoint on doc.
func Post(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPost, operationID, ep)
}

// Put registers a PUT endpoint on doc.
func Put(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPut, operationID, ep)
}

// Patch registers a PATCH endpoint on doc.
func Patch(doc *openapi3.T, path, operationID string, ep Endpoint) {
	addEndpoint(doc, path, http.MethodPatch, operationID, ep)
}

// Marshal validates doc and encodes it as JSON.
func Marshal(ctx context.Context, doc *openapi3.T) ([]byte, error) {
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid document: %w", err)
	}
	return doc.MarshalJSON()
}
