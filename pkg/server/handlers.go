package server

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/duynguyendang/stringlab/pkg/common/errors"
	"github.com/duynguyendang/stringlab/pkg/service"
)

// createString accepts a new string value, analyzes it and persists
// the resulting record.
func (s *Server) createString(c *gin.Context) {
	var req struct {
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		s.handleError(c, errors.NewAppError(http.StatusBadRequest, "Invalid request body", err))
		return
	}

	rec, err := s.strings.Submit(c.Request.Context(), req.Value)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// readString returns the stored record for the value path parameter.
func (s *Server) readString(c *gin.Context) {
	rec, err := s.strings.Retrieve(c.Request.Context(), c.Param("value"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, rec)
}

// filterStrings applies the optional query-parameter criteria to all
// stored records.
func (s *Server) filterStrings(c *gin.Context) {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		s.handleError(c, err)
		return
	}

	result, err := s.strings.ListFiltered(c.Request.Context(), criteria)
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// filterByNaturalLanguage interprets a free-text query and filters
// with the derived criteria.
func (s *Server) filterByNaturalLanguage(c *gin.Context) {
	result, err := s.strings.ListByQuery(c.Request.Context(), c.Query("query"))
	if err != nil {
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// deleteString removes the record for the value path parameter.
func (s *Server) deleteString(c *gin.Context) {
	if err := s.strings.Remove(c.Request.Context(), c.Param("value")); err != nil {
		s.handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// criteriaFromQuery parses the filter query parameters. Malformed
// values are rejected here, before the service is invoked, so the scan
// never runs for bad input.
func criteriaFromQuery(c *gin.Context) (service.Criteria, error) {
	var criteria service.Criteria

	if raw, ok := c.GetQuery("is_palindrome"); ok {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return criteria, errors.Wrap(errors.ErrInvalidInput, "is_palindrome must be a boolean")
		}
		criteria.IsPalindrome = &v
	}
	if v, err := intQuery(c, "min_length"); err != nil {
		return criteria, err
	} else if v != nil {
		criteria.MinLength = v
	}
	if v, err := intQuery(c, "max_length"); err != nil {
		return criteria, err
	} else if v != nil {
		criteria.MaxLength = v
	}
	if v, err := intQuery(c, "word_count"); err != nil {
		return criteria, err
	} else if v != nil {
		criteria.WordCount = v
	}
	if raw, ok := c.GetQuery("contains_character"); ok {
		criteria.ContainsCharacter = &raw
	}

	return criteria, nil
}

func intQuery(c *gin.Context, name string) (*int, error) {
	raw, ok := c.GetQuery(name)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidInput, "%s must be a non-negative integer", name)
	}
	return &v, nil
}

// handleError helper
func (s *Server) handleError(c *gin.Context, err error) {
	appErr := errors.MapError(err)
	s.logger.Errorw("request failed",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", appErr.Code,
		"error", appErr.Error(),
	)
	c.JSON(appErr.Code, gin.H{"error": appErr.Message})
}
