package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/VidTube/internal/domain"
	"github.com/mikiasgoitom/VidTube/internal/domain/contract"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/dto"
	"github.com/mikiasgoitom/VidTube/internal/handler/http/middleware"
	"github.com/mikiasgoitom/VidTube/internal/utils"
)

// ErrorHandler centralizes error handling for HTTP responses
func ErrorHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.ErrorResponse{Error: message})
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Message: message})
}

// BindAndValidate binds JSON request and validates it
func BindAndValidate(c *gin.Context, req interface{}) error {
	if err := c.ShouldBindJSON(req); err != nil {
		ErrorHandler(c, http.StatusBadRequest, err.Error())
		return err
	}
	return nil
}

// HandleError writes err with the status its domain sentinel maps to.
// Upstream and unknown errors are logged and hidden behind a generic message.
func HandleError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code == http.StatusInternalServerError {
		_ = c.Error(err)
		ErrorHandler(c, code, "internal server error")
		return
	}
	ErrorHandler(c, code, err.Error())
}

func getStatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, domain.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// currentUserID returns the authenticated user id. It writes a 401 and
// returns false when the request carries none.
func currentUserID(c *gin.Context) (string, bool) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		ErrorHandler(c, http.StatusUnauthorized, "User not authenticated")
		return "", false
	}
	return userID, true
}

// pagination reads ?page= and ?limit=. It writes a 400 and returns false on bad input.
func pagination(c *gin.Context, maxLimit int) (contract.Pagination, bool) {
	page, err := utils.ParsePagination(c.Query("page"), c.Query("limit"), maxLimit)
	if err != nil {
		HandleError(c, err)
		return contract.Pagination{}, false
	}
	return page, true
}
