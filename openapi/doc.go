// Package openapi documents form endpoints as OpenAPI 3 operations. Request
// bodies are generated from a [formvalidate.RuleSet], response bodies from
// Go values.
//
// Use [DocBase] to create a base document and register endpoints with
// [Post], [Put] or [Patch]:
//
//	doc := openapi.DocBase("contact", "Contact form", "1.0")
//	openapi.Post(doc, "/contact", "submitContact", openapi.Endpoint{
//	    Summary: "Submit the contact form",
//	    Form:    rules,
//	})
package openapi
