package response

import "github.com/gin-gonic/gin"

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// StandardApiResponse is the envelope every API handler answers with.
// Data carries the payload on success; Errors carries validation or error
// details.
type StandardApiResponse struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"status_code"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
	Errors     interface{} `json:"errors,omitempty"`
}

func RespondJSON(c *gin.Context, status string, code int, message string, data interface{}, errors interface{}) {
	c.JSON(code, StandardApiResponse{
		Status:     status,
		StatusCode: code,
		Message:    message,
		Data:       data,
		Errors:     errors,
	})
}

func RespondOK(c *gin.Context, code int, message string, data interface{}) {
	RespondJSON(c, StatusSuccess, code, message, data, nil)
}

// RespondError writes an error envelope carrying err's message as details.
func RespondError(c *gin.Context, code int, message string, err error) {
	var details interface{}
	if err != nil {
		details = err.Error()
	}
	RespondJSON(c, StatusError, code, message, nil, details)
}
