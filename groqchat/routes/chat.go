// groqchat/routes/chat.go
package routes

import (
	"encoding/json"
	"fmt"
	"groqchat/groqchat/controllers"
	"groqchat/groqchat/sources/models"
	"groqchat/groqchat/utils/apperrors"
	"groqchat/groqchat/utils/types"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const maxBodyBytes = 1 << 20

// conversationID returns the decoded path parameter. chi hands back the raw
// escaped form when the request path carries escapes such as %2F.
func conversationID(r *http.Request) (string, error) {
	id, err := url.PathUnescape(chi.URLParam(r, "conversation_id"))
	if err != nil {
		return "", fmt.Errorf("%w: invalid conversation id: %w", apperrors.ErrValidation, err)
	}
	return id, nil
}

func ChatRoutes(ctrl *controllers.ChatController, archive *controllers.ArchiveController) chi.Router {
	r := chi.NewRouter()

	// POST /chat/new : hand out a conversation id, nothing is stored yet
	r.Post("/new", handleJSON(func(r *http.Request) (any, int, error) {
		return types.NewConversationResponse{
			ConversationID: ctrl.NewConversation(),
			Message:        "New conversation started. Use this ID for future messages.",
		}, http.StatusCreated, nil
	}))

	r.Post("/{conversation_id}/send", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := conversationID(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		var req types.SendMessageRequest
		if err := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes)).Decode(&req); err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("%w: invalid request body: %w", apperrors.ErrValidation, err)
		}
		if err := types.ValidateSendMessage(req); err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("%w: message content cannot be empty", apperrors.ErrValidation)
		}
		msg, err := ctrl.Send(r.Context(), id, req.Content)
		if err != nil {
			return nil, statusFor(err), err
		}
		return msg, http.StatusOK, nil
	}))

	r.Get("/{conversation_id}/history", handleJSON(func(r *http.Request) (any, int, error) {
		id, err := conversationID(r)
		if err != nil {
			return nil, http.StatusBadRequest, err
		}
		q, err := types.ParseHistoryQuery(r.URL.Query())
		if err != nil {
			return nil, http.StatusBadRequest, fmt.Errorf("%w: %w", apperrors.ErrValidation, err)
		}
		msgs, err := ctrl.History(r.Context(), id, q.Skip, q.Limit)
		if err != nil {
			return nil, statusFor(err), err
		}
		if msgs == nil {
			msgs = []models.Message{}
		}
		return msgs, http.StatusOK, nil
	}))

	if archive != nil {
		r.Post("/{conversation_id}/archive", handleJSON(func(r *http.Request) (any, int, error) {
			id, err := conversationID(r)
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			key, err := archive.Archive(r.Context(), id)
			if err != nil {
				return nil, statusFor(err), err
			}
			return types.ArchiveResponse{Key: key}, http.StatusCreated, nil
		}))

		// GET /chat/{conversation_id}/archive/{ts} : ts is the unix second from the archive key
		r.Get("/{conversation_id}/archive/{ts}", handleJSON(func(r *http.Request) (any, int, error) {
			id, err := conversationID(r)
			if err != nil {
				return nil, http.StatusBadRequest, err
			}
			ts, err := strconv.ParseInt(chi.URLParam(r, "ts"), 10, 64)
			if err != nil {
				return nil, http.StatusBadRequest, fmt.Errorf("%w: archive timestamp must be an integer", apperrors.ErrValidation)
			}
			data, err := archive.Get(r.Context(), id, ts)
			if err != nil {
				return nil, statusFor(err), err
			}
			return json.RawMessage(data), http.StatusOK, nil
		}))
	}
	return r
}
