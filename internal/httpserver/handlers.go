package httpserver

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/nguyentantai21042004/swift-scribe/internal/llm"
	"github.com/nguyentantai21042004/swift-scribe/internal/note"
	"github.com/nguyentantai21042004/swift-scribe/internal/summarizer"
	"github.com/nguyentantai21042004/swift-scribe/internal/transcriber"
)

const (
	msgNoText   = "Please provide some text."
	msgNoFile   = "No audio file uploaded (field name must be 'file')"
	msgTooLarge = "request body too large"
)

type summarizeRequest struct {
	Text  string `json:"text"`
	Title string `json:"title,omitempty"`
}

type transcribeResponse struct {
	Transcript string `json:"transcript"`
	note.Result
}

type errorBody struct {
	Error string `json:"error"`
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	var body summarizeRequest
	if err := readJSON(w, r, &body, s.maxBodyBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: msgTooLarge})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
		return
	}
	if len(strings.TrimSpace(body.Text)) < summarizer.MinTextLength {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgNoText})
		return
	}

	res, err := s.summarizer.Summarize(r.Context(), summarizer.Request{
		Text:  body.Text,
		Title: body.Title,
		Kind:  summarizer.KindText,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleTranscribeSummarize(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorBody{Error: msgTooLarge})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgNoFile})
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(audio) == 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgNoFile})
		return
	}

	transcript, err := s.transcriber.Transcribe(r.Context(), audio, header.Filename)
	if err == nil && strings.TrimSpace(transcript) == "" {
		err = transcriber.ErrEmptyTranscript
	}
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if len(strings.TrimSpace(transcript)) < summarizer.MinTextLength {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: msgNoText})
		return
	}

	res, err := s.summarizer.Summarize(r.Context(), summarizer.Request{
		Text:  transcript,
		Title: r.FormValue("title"),
		Kind:  summarizer.KindTranscript,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, transcribeResponse{Transcript: transcript, Result: res})
}

// writeError maps pipeline errors to status codes; anything unexpected is a 500.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	msg := err.Error()

	switch {
	case errors.Is(err, summarizer.ErrTextTooShort):
		status, msg = http.StatusBadRequest, msgNoText
	case errors.Is(err, transcriber.ErrEmptyTranscript):
		status, msg = http.StatusBadGateway, transcriber.ErrEmptyTranscript.Error()
	}

	var all *llm.AllModelsFailedError
	if errors.As(err, &all) {
		s.logger.Error(r.Context(), "All %d models failed: %v", all.Attempts, all.Last)
	} else {
		s.logger.Error(r.Context(), "%s %s: %v", r.Method, r.URL.Path, err)
	}

	if msg == "" {
		msg = "Unknown error"
	}
	writeJSON(w, status, errorBody{Error: msg})
}
