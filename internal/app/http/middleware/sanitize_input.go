package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
)

// SanitizeAndCleanInputMiddleware cleans all string fields in JSON and form
// input using bluemonday before handlers bind them.
func SanitizeAndCleanInputMiddleware() gin.HandlerFunc {
	policy := bluemonday.StrictPolicy()

	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost &&
			c.Request.Method != http.MethodPut &&
			c.Request.Method != http.MethodPatch {
			c.Next()
			return
		}

		contentType := c.ContentType()
		switch {
		case strings.HasPrefix(contentType, "application/json"):
			sanitizeJSONBody(c, policy)
		case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
			sanitizeFormBody(c, policy)
		}

		c.Next()
	}
}

func sanitizeJSONBody(c *gin.Context, policy *bluemonday.Policy) {
	var body map[string]interface{}
	buf, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}
	if err := json.Unmarshal(buf, &body); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed JSON"})
		return
	}

	for k, v := range body {
		if str, ok := v.(string); ok {
			body[k] = policy.Sanitize(str)
		}
	}

	newBody, _ := json.Marshal(body)
	c.Request.Body = io.NopCloser(bytes.NewBuffer(newBody))
	c.Request.ContentLength = int64(len(newBody))
}

func sanitizeFormBody(c *gin.Context, policy *bluemonday.Policy) {
	buf, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid body"})
		return
	}
	values, err := url.ParseQuery(string(buf))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Malformed form"})
		return
	}

	clean := url.Values{}
	for k, vs := range values {
		for _, v := range vs {
			clean.Add(k, policy.Sanitize(v))
		}
	}

	encoded := clean.Encode()
	c.Request.Body = io.NopCloser(bytes.NewBufferString(encoded))
	c.Request.ContentLength = int64(len(encoded))
}
