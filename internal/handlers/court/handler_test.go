package court_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"playcourt/infras/otel/mocks"
	"playcourt/internal/domains/court/model/dto"
	serviceMocks "playcourt/internal/domains/court/service/mocks"
	"playcourt/internal/handlers/court"
	gDto "playcourt/shared/dto"
	"playcourt/shared/failure"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*serviceMocks.MockCourt, http.Handler) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := serviceMocks.NewMockCourt(ctrl)

	handler := court.New(svc, mocks.NewOtel())
	router := chi.NewRouter()
	handler.Router(router)

	return svc, router
}

func uploadRequest(t *testing.T, field, contentType string, content []byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if field != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+field+`"; filename="court.png"`)
		header.Set("Content-Type", contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write(content)
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/courts/abc/image", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))

	return body["error"]
}

func TestUploadCourtImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\nnot really an image")

	t.Run("missing file", func(t *testing.T) {
		_, router := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, "", "", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "image file is required", errorOf(t, rec))
	})

	t.Run("unsupported media type", func(t *testing.T) {
		_, router := newRouter(t)

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, "file", "application/pdf", png))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, errorOf(t, rec), "image/png")
	})

	t.Run("not a multipart body", func(t *testing.T) {
		_, router := newRouter(t)

		req := httptest.NewRequest(http.MethodPost, "/courts/abc/image", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("uploaded", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			UploadImage(gomock.Any(), gomock.Any(), "abc").
			DoAndReturn(func(_ context.Context, req dto.UploadImageRequest, _ string) (dto.UploadImageResponse, error) {
				assert.Equal(t, "court.png", req.Image.Filename)

				content, err := io.ReadAll(req.ImageFile)
				require.NoError(t, err)
				assert.Equal(t, png, content)

				return dto.UploadImageResponse{ModifiedCount: 1, Image: "https://cdn.example.com/courts/x.png"}, nil
			})

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, "file", "image/png", png))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"modifiedCount":1,"image":"https://cdn.example.com/courts/x.png"}`, rec.Body.String())
	})

	t.Run("unknown court", func(t *testing.T) {
		svc, router := newRouter(t)

		svc.EXPECT().
			UploadImage(gomock.Any(), gomock.Any(), "abc").
			Return(dto.UploadImageResponse{}, failure.NotFound("court not found"))

		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, uploadRequest(t, "file", "image/png", png))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "court not found", errorOf(t, rec))
	})
}

func TestUpdateCourt_EmptyPatch(t *testing.T) {
	svc, router := newRouter(t)

	svc.EXPECT().
		Update(gomock.Any(), dto.UpdateCourtRequest{}, "abc").
		Return(gDto.UpdateResponse{}, failure.EmptyUpdateRequest)

	req := httptest.NewRequest(http.MethodPatch, "/courts/abc", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "update request cannot be empty", errorOf(t, rec))
}
