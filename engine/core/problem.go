// Package core holds types shared by the HTTP-facing packages.
package core

import (
	"maps"
	"net/http"
)

// ProblemDocument models the canonical error envelope for API responses.
type ProblemDocument struct {
	Status  int    `json:"status"            example:"404"`
	Error   string `json:"error"             example:"Not Found"`
	Details string `json:"details,omitempty" example:"Section not found"`
	Code    string `json:"code,omitempty"    example:"section_not_found"`
	Type    string `json:"type,omitempty"    example:"about:blank"`
}

// Problem captures the information returned in an RFC 7807 error response.
type Problem struct {
	Type   string
	Title  string
	Status int
	Detail string
	Extras map[string]any
}

// NormalizeProblem ensures the provided problem includes canonical defaults.
func NormalizeProblem(problem *Problem) *Problem {
	if problem == nil {
		problem = &Problem{}
	}
	if problem.Status == 0 {
		problem.Status = http.StatusInternalServerError
	}
	if problem.Title == "" {
		problem.Title = http.StatusText(problem.Status)
	}
	if problem.Type == "" {
		problem.Type = "about:blank"
	}
	return problem
}

// BuildProblemBody assembles the serialized representation of the problem.
// Extras are merged in, except keys that would shadow the envelope.
func BuildProblemBody(problem *Problem) map[string]any {
	body := map[string]any{
		"status": problem.Status,
		"error":  problem.Title,
	}
	if problem.Detail != "" {
		body["details"] = problem.Detail
	}
	if code, ok := problem.Extras["code"]; ok {
		body["code"] = code
	}
	if problem.Type != "" {
		body["type"] = problem.Type
	}
	extras := maps.Clone(problem.Extras)
	maps.DeleteFunc(extras, func(key string, _ any) bool { return isReservedProblemKey(key) })
	maps.Copy(body, extras)
	return body
}

func isReservedProblemKey(key string) bool {
	switch key {
	case "status", "error", "details", "code", "type":
		return true
	default:
		return false
	}
}
