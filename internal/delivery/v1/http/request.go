package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"mime"
	"net/http"
	"sort"

	"github.com/DRSN-tech/micrositio-backend/internal/domain"
	"github.com/DRSN-tech/micrositio-backend/internal/usecase"
	"github.com/DRSN-tech/micrositio-backend/pkg/e"
	"github.com/shopspring/decimal"
)

const (
	maxBodySize = 1 << 20
	maxMemory   = 1 << 20
)

// patchSetter переносит одно поле JSON в ProductPatch.
type patchSetter func(p *domain.ProductPatch, raw json.RawMessage) error

// productPatchSetters содержит все поля, которые можно обновлять.
// Ключи, которых здесь нет, игнорируются.
var productPatchSetters = map[string]patchSetter{
	"nombre": func(p *domain.ProductPatch, raw json.RawMessage) error {
		v, err := decodeString("nombre", raw)
		if err != nil {
			return err
		}
		p.Name = domain.Some(v)
		return nil
	},
	"description": func(p *domain.ProductPatch, raw json.RawMessage) error {
		v, err := decodeOptionalString("description", raw)
		if err != nil {
			return err
		}
		p.Description = domain.Some(v)
		return nil
	},
	"precio": func(p *domain.ProductPatch, raw json.RawMessage) error {
		v, err := decodePrice(raw)
		if err != nil {
			return err
		}
		p.Price = domain.Some(v)
		return nil
	},
	"image_url": func(p *domain.ProductPatch, raw json.RawMessage) error {
		v, err := decodeOptionalString("image_url", raw)
		if err != nil {
			return err
		}
		p.ImageURL = domain.Some(v)
		return nil
	},
	"video_url": func(p *domain.ProductPatch, raw json.RawMessage) error {
		v, err := decodeOptionalString("video_url", raw)
		if err != nil {
			return err
		}
		p.VideoURL = domain.Some(v)
		return nil
	},
}

// decodeObject читает тело запроса как JSON-объект.
func decodeObject(w http.ResponseWriter, r *http.Request) (map[string]json.RawMessage, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodySize))
	if err != nil {
		return nil, e.Validation("no se pudo leer el cuerpo: %v", err)
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil || obj == nil {
		return nil, e.Validation("el cuerpo debe ser un objeto JSON")
	}

	return obj, nil
}

func parseCreateProduct(w http.ResponseWriter, r *http.Request) (*usecase.CreateProductReq, error) {
	obj, err := decodeObject(w, r)
	if err != nil {
		return nil, err
	}

	req := &usecase.CreateProductReq{}

	if raw, ok := obj["nombre"]; ok {
		if req.Name, err = decodeString("nombre", raw); err != nil {
			return nil, err
		}
	}

	raw, ok := obj["precio"]
	if !ok {
		return nil, e.Validation("el campo 'precio' es obligatorio")
	}
	if req.Price, err = decodePrice(raw); err != nil {
		return nil, err
	}

	optional := []struct {
		key string
		dst **string
	}{
		{"description", &req.Description},
		{"image_url", &req.ImageURL},
		{"video_url", &req.VideoURL},
	}
	for _, f := range optional {
		raw, ok := obj[f.key]
		if !ok {
			continue
		}
		if *f.dst, err = decodeOptionalString(f.key, raw); err != nil {
			return nil, err
		}
	}

	return req, nil
}

// parseProductPatch строит ProductPatch только из переданных и разрешённых ключей.
func parseProductPatch(w http.ResponseWriter, r *http.Request) (domain.ProductPatch, error) {
	var patch domain.ProductPatch

	obj, err := decodeObject(w, r)
	if err != nil {
		return patch, err
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		if _, ok := productPatchSetters[k]; ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, k := range keys {
		if err := productPatchSetters[k](&patch, obj[k]); err != nil {
			return patch, err
		}
	}

	return patch, nil
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func decodeString(field string, raw json.RawMessage) (string, error) {
	if isNull(raw) {
		return "", e.Validation("el campo '%s' no puede ser null", field)
	}

	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", e.Validation("el campo '%s' debe ser una cadena", field)
	}
	return s, nil
}

func decodeOptionalString(field string, raw json.RawMessage) (*string, error) {
	if isNull(raw) {
		return nil, nil
	}

	s, err := decodeString(field, raw)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// decodePrice принимает только JSON-число без дробной части: 1500 и 1500.0 подходят, 15.5 и "1500" нет.
func decodePrice(raw json.RawMessage) (int64, error) {
	const field = "precio"

	trimmed := bytes.TrimSpace(raw)
	if isNull(trimmed) {
		return 0, e.Validation("el campo '%s' no puede ser null", field)
	}
	if len(trimmed) == 0 || (trimmed[0] != '-' && (trimmed[0] < '0' || trimmed[0] > '9')) {
		return 0, e.Validation("el campo '%s' debe ser un número entero", field)
	}

	d, err := decimal.NewFromString(string(trimmed))
	if err != nil {
		return 0, e.Validation("el campo '%s' debe ser un número entero", field)
	}
	if !d.IsInteger() {
		return 0, e.Validation("el campo '%s' debe ser un número entero", field)
	}
	if d.GreaterThan(decimal.NewFromInt(math.MaxInt64)) || d.LessThan(decimal.NewFromInt(math.MinInt64)) {
		return 0, e.Validation("el campo '%s' está fuera de rango", field)
	}

	return d.IntPart(), nil
}

// formField задаёт поле формы и его английский синоним.
type formField struct {
	name  string
	alias string
}

// readFields читает поля из формы (urlencoded или multipart) или из JSON-объекта.
// Отсутствующее поле возвращается пустой строкой.
func readFields(w http.ResponseWriter, r *http.Request, fields ...formField) (map[string]string, error) {
	res := make(map[string]string, len(fields))

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/json" {
		obj, err := decodeObject(w, r)
		if err != nil {
			return nil, err
		}

		for _, f := range fields {
			raw, ok := obj[f.name]
			if !ok {
				raw, ok = obj[f.alias]
			}
			if !ok || isNull(raw) {
				continue
			}
			s, err := decodeString(f.name, raw)
			if err != nil {
				return nil, err
			}
			res[f.name] = s
		}
		return res, nil
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodySize)
	var err error
	if mediaType == "multipart/form-data" {
		err = r.ParseMultipartForm(maxMemory)
	} else {
		err = r.ParseForm()
	}
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, e.Validation("formulario inválido: %v", err)
	}

	for _, f := range fields {
		v := r.PostFormValue(f.name)
		if v == "" && f.alias != "" {
			v = r.PostFormValue(f.alias)
		}
		res[f.name] = v
	}

	return res, nil
}
