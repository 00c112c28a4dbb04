package blogs

import (
	"mime/multipart"
	"net/http"

	"lifehub/internal/dto"
	"lifehub/internal/lifecycle"
	"lifehub/internal/models"
)

// imagePayloads opens every part under the "images" field. Callers must run
// the returned closer once the payloads have been consumed.
func imagePayloads(r *http.Request) ([]lifecycle.Payload, func(), error) {
	if r.MultipartForm == nil {
		return nil, func() {}, nil
	}

	headers := r.MultipartForm.File["images"]

	payloads := make([]lifecycle.Payload, 0, len(headers))
	opened := make([]multipart.File, 0, len(headers))

	closer := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	for _, header := range headers {
		part, err := header.Open()
		if err != nil {
			closer()
			return nil, func() {}, err
		}

		opened = append(opened, part)
		payloads = append(payloads, lifecycle.Payload{
			OriginalName: header.Filename,
			Mime:         header.Header.Get("Content-Type"),
			Size:         header.Size,
			Content:      part,
		})
	}

	return payloads, closer, nil
}

func toResponse(blog *models.Blog) dto.BlogResponse {
	return dto.BlogResponse{
		ID:         blog.ID,
		Title:      blog.Title,
		Content:    blog.Content,
		Author:     blog.Author,
		ImageCount: len(blog.ImagePaths),
		CreatedAt:  blog.CreatedAt,
		UpdatedAt:  blog.UpdatedAt,
	}
}
