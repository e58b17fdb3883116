package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	serr "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/errors"
	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

// decodeAttributes достаёт data.attributes из тела запроса.
//
// Пустое тело — пустые атрибуты, невалидный JSON — serr.ErrBadJSON.
// Превышение лимита тела возвращается как *http.MaxBytesError.
func decodeAttributes[T any](r *http.Request) (T, error) {
	var doc shared.Document[shared.Resource[T]]

	err := json.NewDecoder(r.Body).Decode(&doc)
	if err == nil || errors.Is(err, io.EOF) {
		return doc.Data.Attributes, nil
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return doc.Data.Attributes, err
	}
	return doc.Data.Attributes, fmt.Errorf("%w: %v", serr.ErrBadJSON, err)
}
