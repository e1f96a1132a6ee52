package handlers

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"FormLab/core"

	"github.com/gin-gonic/gin"
)

var errEmptyBody = errors.New("empty form body")

// readRawInput turns a JSON or multipart request body into the engine's raw field bag.
// Shapes the engine cannot use are passed on as Unsupported so the field fails
// validation instead of the whole request failing here.
func readRawInput(c *gin.Context) (core.RawInput, error) {
	if strings.HasPrefix(c.ContentType(), "multipart/") {
		return readMultipart(c)
	}
	return readJSON(c)
}

func readJSON(c *gin.Context) (core.RawInput, error) {
	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		return nil, err
	}
	if body == nil {
		return nil, errEmptyBody
	}
	raw := make(core.RawInput, len(body))
	for field, v := range body {
		if field == core.FieldImage {
			raw[field] = jsonImage(v)
			continue
		}
		raw[field] = jsonValue(v)
	}
	return raw, nil
}

func jsonValue(v any) core.Value {
	switch t := v.(type) {
	case nil:
		return core.Absent()
	case string:
		return core.Text(t)
	case float64:
		return core.Number(t)
	case bool:
		return core.Boolean(t)
	}
	return core.Unsupported()
}

// jsonImage accepts a data URI string or a {name,type,size,data} object with base64 data.
func jsonImage(v any) core.Value {
	switch t := v.(type) {
	case string:
		if strings.HasPrefix(t, "data:") {
			return core.DataURIText(t)
		}
		return core.Text(t)
	case map[string]any:
		b := core.Blob{}
		b.Name, _ = t["name"].(string)
		b.MIMEType, _ = t["type"].(string)
		if size, ok := t["size"].(float64); ok && size > 0 {
			b.Size = int64(size)
		}
		if data, ok := t["data"].(string); ok && data != "" {
			decoded, err := base64.StdEncoding.DecodeString(data)
			if err != nil {
				return core.Unsupported()
			}
			b.Data = decoded
			b.Size = int64(len(decoded)) // never trust the declared size over the bytes
		}
		return core.BlobValue(b)
	}
	return jsonValue(v)
}

func readMultipart(c *gin.Context) (core.RawInput, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, err
	}
	raw := make(core.RawInput, len(form.Value)+1)
	for field, values := range form.Value {
		if len(values) > 0 {
			raw[field] = core.Text(values[0])
		}
	}
	if files := form.File[core.FieldImage]; len(files) > 0 {
		b, err := readUpload(files[0])
		if err != nil {
			return nil, err
		}
		raw[core.FieldImage] = core.BlobValue(b)
	}
	return raw, nil
}

// readUpload keeps oversized files as metadata only; the image rule rejects them on size.
func readUpload(fh *multipart.FileHeader) (core.Blob, error) {
	b := core.Blob{Name: fh.Filename, MIMEType: fh.Header.Get("Content-Type"), Size: fh.Size}
	if fh.Size > core.MaxImageBytes {
		return b, nil
	}
	f, err := fh.Open()
	if err != nil {
		return b, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, core.MaxImageBytes+1))
	if err != nil {
		return b, fmt.Errorf("read upload: %w", err)
	}
	b.Data = data
	return b, nil
}
