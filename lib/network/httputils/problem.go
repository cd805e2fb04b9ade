package httputils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"boscoin.io/council/lib/errors"
)

const (
	ProblemContentType    = "application/problem+json"
	ProblemTypeAboutBlank = "about:blank"
	problemTypePrefix     = "https://boscoin.io/council/problem/"
)

// Problem is the RFC 7807 error body.
type Problem struct {
	Type     string                 `json:"type"`
	Title    string                 `json:"title"`
	Status   int                    `json:"status,omitempty"`
	Detail   string                 `json:"detail,omitempty"`
	Instance string                 `json:"instance,omitempty"`
	Code     uint                   `json:"code,omitempty"`
	Data     map[string]interface{} `json:"data,omitempty"`
}

func NewStatusProblem(status int) Problem {
	return Problem{Type: ProblemTypeAboutBlank, Title: http.StatusText(status), Status: status}
}

func NewDetailedStatusProblem(status int, detail string) Problem {
	p := NewStatusProblem(status)
	p.Detail = detail
	return p
}

// NewErrorProblem makes a problem from `err`; an `*errors.Error` keeps its
// code and data.
func NewErrorProblem(err error, status int) Problem {
	e, ok := err.(*errors.Error)
	if !ok {
		return Problem{Type: ProblemTypeAboutBlank, Title: err.Error(), Status: status}
	}

	p := Problem{
		Type:   fmt.Sprintf("%s%d", problemTypePrefix, e.Code),
		Title:  e.Message,
		Status: status,
		Code:   e.Code,
	}
	if len(e.Data) > 0 {
		p.Data = e.Data
	}

	return p
}

func (p Problem) SetInstance(instance string) Problem {
	p.Instance = instance
	return p
}

func (p Problem) SetDetail(detail string) Problem {
	p.Detail = detail
	return p
}

func (p Problem) Serialize() ([]byte, error) {
	return json.Marshal(p)
}
