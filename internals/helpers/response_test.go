package helper

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseFor(t *testing.T, handler fiber.Handler) (int, map[string]interface{}) {
	t.Helper()

	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestJsonErrorEnvelope(t *testing.T) {
	status, body := responseFor(t, func(c *fiber.Ctx) error {
		return JsonError(c, fiber.StatusConflict, "Year already exists")
	})

	assert.Equal(t, http.StatusConflict, status)
	assert.EqualValues(t, fiber.StatusConflict, body["code"])
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Year already exists", body["message"])
}

func TestValidationErrorMapsFields(t *testing.T) {
	type payload struct {
		Year int `validate:"required,gte=2010"`
	}

	status, body := responseFor(t, func(c *fiber.Ctx) error {
		err := validator.New().Struct(payload{Year: 1999})
		return ValidationError(c, err)
	})

	assert.Equal(t, http.StatusBadRequest, status)
	errs, ok := body["errors"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "gte", errs["Year"])
}

func TestFromFiberError(t *testing.T) {
	status, body := responseFor(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, fiber.NewError(fiber.StatusNotFound, "Year not found"))
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Year not found", body["message"])

	status, body = responseFor(t, func(c *fiber.Ctx) error {
		return FromFiberError(c, assert.AnError)
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "error", body["status"])
}
