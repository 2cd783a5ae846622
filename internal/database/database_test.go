package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMongoDatabaseName(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"mongodb://localhost:27017/journal", "journal"},
		{"mongodb+srv://u:p@cluster.example.net/diary?retryWrites=true", "diary"},
		{"mongodb://localhost:27017/", "neurosphere"},
		{"mongodb://localhost:27017", "neurosphere"},
		{"mongodb://localhost:27017/?tls=true", "neurosphere"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MongoDatabaseName(tt.uri), tt.uri)
	}
}
