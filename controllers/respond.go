package controllers

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/WangRL15/Health-Management-Web-Application/middlewares"
	"github.com/WangRL15/Health-Management-Web-Application/services"
	"github.com/WangRL15/Health-Management-Web-Application/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

const (
	genericFailure  = "Something went wrong, please try again later"
	maxFormMemory   = 1 << 20
	invalidLoginMsg = "Invalid username or password"
)

// respondError turns a service error into a short notice. Storage and
// unexpected errors are logged and never shown to the client.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": detail(err, services.ErrValidation)})
	case errors.Is(err, services.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": detail(err, services.ErrConflict)})
	case errors.Is(err, services.ErrAuth):
		c.JSON(http.StatusUnauthorized, gin.H{"error": invalidLoginMsg})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": genericFailure})
	}
}

// detail strips the sentinel prefix, leaving the part meant for the user.
func detail(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}

// bindingError reports the first failed binding rule as a field error.
func bindingError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: malformed request body", services.ErrValidation)
	}
	fe := verrs[0]
	reason := "is invalid"
	switch fe.Tag() {
	case "required":
		reason = "is required"
	case "email":
		reason = "must be a valid email address"
	}
	return fmt.Errorf("%w: %v", services.ErrValidation,
		&utils.FieldError{Field: strings.ToLower(fe.Field()), Reason: reason})
}

// bindFields flattens a form-encoded, multipart or JSON body into string
// values so every handler parses input the same way.
func bindFields(c *gin.Context) (utils.Fields, error) {
	out := utils.Fields{}
	mediaType, _, _ := mime.ParseMediaType(c.GetHeader("Content-Type"))

	switch mediaType {
	case gin.MIMEJSON:
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			return nil, fmt.Errorf("%w: body must be a JSON object", services.ErrValidation)
		}
		for key, v := range body {
			switch val := v.(type) {
			case nil:
			case string:
				out[key] = val
			case float64:
				out[key] = strconv.FormatFloat(val, 'f', -1, 64)
			case bool:
				out[key] = strconv.FormatBool(val)
			default:
				return nil, fmt.Errorf("%w: %v", services.ErrValidation,
					&utils.FieldError{Field: key, Reason: "must be a string or number"})
			}
		}
		return out, nil
	case gin.MIMEMultipartPOSTForm:
		if err := c.Request.ParseMultipartForm(maxFormMemory); err != nil {
			return nil, fmt.Errorf("%w: malformed form body", services.ErrValidation)
		}
	default:
		if err := c.Request.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: malformed form body", services.ErrValidation)
		}
	}
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			out[key] = values[0]
		}
	}
	return out, nil
}

// userIDFromCtx reads the id RequireLogin guarantees is present.
func userIDFromCtx(c *gin.Context) (uint, bool) {
	id, ok := middlewares.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	}
	return id, ok
}
