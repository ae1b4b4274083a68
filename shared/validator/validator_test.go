package validator_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"playcourt/shared/failure"
	"playcourt/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingRequest struct {
	CourtID string `json:"courtId" validate:"required,mongodb"`
	Email   string `json:"email"   validate:"required,email"`
	Status  string `json:"status"  validate:"required,oneof=pending confirmed approved rejected"`
	Price   int    `json:"price"   validate:"gte=0,lte=100000"`
}

type imageRequest struct {
	Image *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpeg,maxfilesize=1"`
}

func validBooking() bookingRequest {
	return bookingRequest{
		CourtID: "65f1c0a2b3d4e5f607182930",
		Email:   "player@example.com",
		Status:  "pending",
		Price:   25,
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(req *bookingRequest)
		expectedMsg string
	}{
		{
			name:   "valid struct",
			mutate: func(_ *bookingRequest) {},
		},
		{
			name:        "missing required field",
			mutate:      func(req *bookingRequest) { req.Email = "" },
			expectedMsg: "email is required",
		},
		{
			name:        "invalid email",
			mutate:      func(req *bookingRequest) { req.Email = "player" },
			expectedMsg: "email must be a valid email address",
		},
		{
			name:        "status outside the allowed set",
			mutate:      func(req *bookingRequest) { req.Status = "cancelled" },
			expectedMsg: "status must be one of pending confirmed approved rejected",
		},
		{
			name:        "malformed identifier",
			mutate:      func(req *bookingRequest) { req.CourtID = "court-1" },
			expectedMsg: "courtId must be a valid identifier",
		},
		{
			name:        "price out of range",
			mutate:      func(req *bookingRequest) { req.Price = -1 },
			expectedMsg: "price must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validBooking()
			tt.mutate(&req)

			err := validator.ValidateStruct(&req)

			if tt.expectedMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectedMsg string
	}{
		{name: "valid required string", field: "test", tag: "required"},
		{name: "empty required string", field: "", tag: "required", expectedMsg: "value is required"},
		{name: "valid role", field: "member", tag: "oneof=admin member user"},
		{name: "invalid role", field: "owner", tag: "oneof=admin member user", expectedMsg: "value must be one of admin member user"},
		{name: "omitted optional value", field: "", tag: "omitempty,oneof=pending confirmed"},
		{name: "empty tag accepts zero value", field: "", tag: "empty"},
		{name: "data uri with allowed type", field: "data:image/png;base64,iVBORw0KGgo=", tag: "mimetypes=image/png"},
		{name: "data uri with other type", field: "data:text/plain;base64,aGk=", tag: "mimetypes=image/png", expectedMsg: "value must be one of image/png"},
		{name: "plain string has no media type", field: "image/png", tag: "mimetypes=image/png", expectedMsg: "value must be one of image/png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar("value", tt.field, tt.tag)

			if tt.expectedMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.expectedMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"courtId":"65f1c0a2b3d4e5f607182930","email":"player@example.com","status":"pending","price":10}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"courtId":"65f1c0a2b3d4e5f607182930","email":"player","status":"pending"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"courtId":`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data bookingRequest

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func newMultipartRequest(t *testing.T, contentType string, size int) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="image"; filename="court.png"`)
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(bytes.Repeat([]byte{0x1}, size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/courts/1/image", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return req
}

func fillImage(form *multipart.Form, data *imageRequest) error {
	if files := form.File["image"]; len(files) > 0 {
		data.Image = files[0]
	}

	return nil
}

func TestValidateForm(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		size        int
		expectError bool
	}{
		{name: "accepted image", contentType: "image/png", size: 128},
		{name: "rejected media type", contentType: "application/pdf", size: 128, expectError: true},
		{name: "file too large", contentType: "image/jpeg", size: 2 << 20, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data imageRequest

			err := validator.ValidateForm(newMultipartRequest(t, tt.contentType, tt.size), &data, fillImage)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "court.png", data.Image.Filename)
			}
		})
	}
}

func TestValidateForm_NotMultipart(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/courts/1/image", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")

	var data imageRequest

	err := validator.ValidateForm(req, &data, fillImage)

	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
}
