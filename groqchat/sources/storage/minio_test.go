package storage

import (
	"errors"
	"groqchat/groqchat/utils/apperrors"
	"net/http"
	"testing"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/require"
)

func TestTranscriptKey(t *testing.T) {
	at := time.Unix(1700000000, 0)
	require.Equal(t, "transcripts/c1/1700000000.json", TranscriptKey("c1", at))
}

func TestTranscriptError(t *testing.T) {
	missing := transcriptError("transcripts/c1/1.json", minio.ErrorResponse{Code: "NoSuchKey", StatusCode: http.StatusNotFound})
	require.ErrorIs(t, missing, apperrors.ErrNotFound)
	require.Contains(t, missing.Error(), "transcripts/c1/1.json")

	denied := transcriptError("transcripts/c1/1.json", minio.ErrorResponse{Code: "AccessDenied", StatusCode: http.StatusForbidden})
	require.ErrorIs(t, denied, apperrors.ErrStorage)
	require.NotErrorIs(t, denied, apperrors.ErrNotFound)

	require.ErrorIs(t, transcriptError("k", errors.New("connection refused")), apperrors.ErrStorage)
}
