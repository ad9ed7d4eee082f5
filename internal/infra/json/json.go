// Package json is the JSON codec used across the service.
package json

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
)

//nolint:gochecknoglobals
var (
	// JSON is the codec instance shared by every package
	JSON = jsoniter.ConfigCompatibleWithStandardLibrary

	Marshal       = JSON.Marshal
	MarshalIndent = JSON.MarshalIndent
	Unmarshal     = JSON.Unmarshal
	NewDecoder    = JSON.NewDecoder
	NewEncoder    = JSON.NewEncoder
)

// Serializer is an echo.JSONSerializer backed by JSON.
type Serializer struct{}

// Serialize writes i to the response.
func (Serializer) Serialize(c echo.Context, i any, indent string) error {
	enc := NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}

	return enc.Encode(i)
}

// Deserialize reads the request body into i.
func (Serializer) Deserialize(c echo.Context, i any) error {
	if err := NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "malformed JSON body").SetInternal(err)
	}

	return nil
}
