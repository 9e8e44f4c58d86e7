package http_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/klwxsrx/media-service/internal/file/app/service"
	servicemock "github.com/klwxsrx/media-service/internal/file/app/service/mock"
	"github.com/klwxsrx/media-service/internal/file/domain"
	filehttp "github.com/klwxsrx/media-service/internal/file/infra/http"
	pkgauth "github.com/klwxsrx/media-service/pkg/auth"
	pkghttp "github.com/klwxsrx/media-service/pkg/http"
)

const testMaxSize = 16

var (
	fileID  = uuid.MustParse("0d6c7d47-3a49-4b7e-8c1e-3c2b0a6f9e10")
	ownerID = uuid.MustParse("9a8b7c6d-5e4f-4a3b-9c2d-1e0f9a8b7c6d")
	created = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
)

func newTestServer(fileService service.File) http.Handler {
	srv := pkghttp.NewServer()
	srv.Register(filehttp.NewUploadFileHandler(fileService, testMaxSize))
	srv.Register(filehttp.NewListFilesHandler(fileService))
	srv.Register(filehttp.NewUpdatePrioritiesHandler(fileService))
	srv.Register(filehttp.NewRegisterViewHandler(fileService))
	srv.Register(filehttp.NewGetFileHandler(fileService))
	return srv.Handler()
}

func testFile() *service.FileData {
	return &service.FileData{
		ID:        domain.FileID{UUID: fileID},
		OwnerID:   ownerID,
		Filename:  "cat.png",
		Type:      domain.FileTypeImage,
		URL:       "https://cdn.example.com/cat.png",
		Tags:      []string{"cats"},
		Priority:  1,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func testFileJSON() string {
	return fmt.Sprintf(`{"_id":"%s","filename":"cat.png","fileType":"image","fileUrl":"https://cdn.example.com/cat.png",`+
		`"tags":["cats"],"isShared":false,"priority":1,"totalViews":0,"owner":"%s",`+
		`"createdAt":"2024-05-01T12:00:00Z","updatedAt":"2024-05-01T12:00:00Z"}`, fileID, ownerID)
}

func multipartRequest(t *testing.T, filename, contentType, content string, tags ...string) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)

	for _, tag := range tags {
		require.NoError(t, writer.WriteField("tags", tag))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/files/upload", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadFileHandler(t *testing.T) {
	tests := []struct {
		name         string
		request      func(t *testing.T) *http.Request
		prepare      func(m *servicemock.File)
		expectedCode int
		expectedBody string
	}{
		{
			name: "uploads_file_with_tags",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "cat.png", "image/png", "meow", "cats,pets", "cute")
			},
			prepare: func(m *servicemock.File) {
				m.EXPECT().Upload(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, data service.UploadFileData) (*service.FileData, error) {
						assert.Equal(t, "cat.png", data.Filename)
						assert.Equal(t, "image/png", data.ContentType)
						assert.Equal(t, int64(4), data.Size)
						assert.Equal(t, []string{"cats", "pets", "cute"}, data.Tags)

						content, err := io.ReadAll(data.Content)
						assert.NoError(t, err)
						assert.Equal(t, "meow", string(content))
						return testFile(), nil
					})
			},
			expectedCode: http.StatusOK,
			expectedBody: testFileJSON(),
		},
		{
			name: "rejects_unsupported_type",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "doc.pdf", "application/pdf", "pdf")
			},
			prepare: func(m *servicemock.File) {
				m.EXPECT().Upload(gomock.Any(), gomock.Any()).Return(nil, service.ErrUnsupportedFileType)
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":true,"message":"Invalid file type. Only image and video files are allowed."}`,
		},
		{
			name: "rejects_too_large_file",
			request: func(t *testing.T) *http.Request {
				return multipartRequest(t, "cat.png", "image/png", strings.Repeat("x", testMaxSize+1))
			},
			prepare:      func(*servicemock.File) {},
			expectedCode: http.StatusRequestEntityTooLarge,
			expectedBody: `{"error":true,"message":"File too large. Maximum size is 16 bytes."}`,
		},
		{
			name: "rejects_request_without_file",
			request: func(*testing.T) *http.Request {
				return httptest.NewRequest(http.MethodPost, "/files/upload", strings.NewReader("{}"))
			},
			prepare:      func(*servicemock.File) {},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			fileService := servicemock.NewFile(ctrl)
			tc.prepare(fileService)

			rec := httptest.NewRecorder()
			newTestServer(fileService).ServeHTTP(rec, tc.request(t))

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			}
		})
	}
}

func TestFileHandlers(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		path         string
		body         string
		prepare      func(m *servicemock.File)
		expectedCode int
		expectedBody string
	}{
		{
			name:   "get_file",
			method: http.MethodGet,
			path:   "/files/" + fileID.String(),
			prepare: func(m *servicemock.File) {
				m.EXPECT().Get(gomock.Any(), domain.FileID{UUID: fileID}).Return(testFile(), nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: testFileJSON(),
		},
		{
			name:   "get_missing_file",
			method: http.MethodGet,
			path:   "/files/" + fileID.String(),
			prepare: func(m *servicemock.File) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, service.ErrFileNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":true,"message":"File not found"}`,
		},
		{
			name:   "get_foreign_private_file",
			method: http.MethodGet,
			path:   "/files/" + fileID.String(),
			prepare: func(m *servicemock.File) {
				m.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, pkgauth.ErrPermissionDenied)
			},
			expectedCode: http.StatusForbidden,
			expectedBody: `{"error":true,"message":"You do not have access to this file"}`,
		},
		{
			name:         "get_file_with_invalid_id",
			method:       http.MethodGet,
			path:         "/files/not-a-uuid",
			prepare:      func(*servicemock.File) {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name:   "list_owned_files",
			method: http.MethodGet,
			path:   "/files/list/details",
			prepare: func(m *servicemock.File) {
				m.EXPECT().ListOwned(gomock.Any()).Return([]service.FileData{*testFile()}, nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `[` + testFileJSON() + `]`,
		},
		{
			name:   "update_priorities",
			method: http.MethodPut,
			path:   "/files/update-priority",
			body:   fmt.Sprintf(`[{"_id":"%s","priority":3}]`, fileID),
			prepare: func(m *servicemock.File) {
				m.EXPECT().UpdatePriorities(gomock.Any(), []service.PriorityUpdate{
					{FileID: domain.FileID{UUID: fileID}, Priority: 3},
				}).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"Priority Updated Successfully"}`,
		},
		{
			name:         "update_priorities_invalid_id",
			method:       http.MethodPut,
			path:         "/files/update-priority",
			body:         `[{"_id":"nope","priority":3}]`,
			prepare:      func(*servicemock.File) {},
			expectedCode: http.StatusBadRequest,
			expectedBody: `{"error":true,"message":"0: (_id: must be a valid UUID.)."}`,
		},
		{
			name:   "update_priorities_of_foreign_file",
			method: http.MethodPut,
			path:   "/files/update-priority",
			body:   fmt.Sprintf(`[{"_id":"%s","priority":3}]`, fileID),
			prepare: func(m *servicemock.File) {
				m.EXPECT().UpdatePriorities(gomock.Any(), gomock.Any()).Return(service.ErrFileNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":true,"message":"File not found"}`,
		},
		{
			name:   "register_view",
			method: http.MethodGet,
			path:   "/files/update-view/" + fileID.String(),
			prepare: func(m *servicemock.File) {
				m.EXPECT().RegisterView(gomock.Any(), domain.FileID{UUID: fileID}).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: `{"message":"View Updated Successfully"}`,
		},
		{
			name:   "register_view_of_missing_file",
			method: http.MethodGet,
			path:   "/files/update-view/" + fileID.String(),
			prepare: func(m *servicemock.File) {
				m.EXPECT().RegisterView(gomock.Any(), gomock.Any()).Return(service.ErrFileNotFound)
			},
			expectedCode: http.StatusNotFound,
			expectedBody: `{"error":true,"message":"File not found"}`,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			ctrl := gomock.NewController(t)

			fileService := servicemock.NewFile(ctrl)
			tc.prepare(fileService)

			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			newTestServer(fileService).ServeHTTP(rec, req)

			assert.Equal(t, tc.expectedCode, rec.Code)
			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rec.Body.String())
			}
		})
	}
}
