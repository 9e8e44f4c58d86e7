//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "ObjectStorage=ObjectStorage"
package storage

import (
	"context"
	"io"
)

type (
	Object struct {
		Key         string
		ContentType string
		Size        int64
		Body        io.Reader
	}

	ObjectStorage interface {
		// Put stores the object and returns its public URL.
		Put(context.Context, Object) (string, error)
		// Delete removes the object. Deleting a missing key is not an error.
		Delete(ctx context.Context, key string) error
	}
)
