package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/careerprep-ai/careerprep-api/internal/dtos"
	"github.com/careerprep-ai/careerprep-api/internal/extract"
	"github.com/careerprep-ai/careerprep-api/internal/interview"
	"github.com/careerprep-ai/careerprep-api/internal/models"
	"github.com/careerprep-ai/careerprep-api/internal/store"
)

// ErrNoQuestion means clarify was called before any question was issued.
var ErrNoQuestion = errors.New("services: session has no question to clarify")

const (
	questionMaxTokens = 120
	feedbackMaxTokens = 700
)

// InterviewService runs the six-stage mock-interview flow on top of the
// session store and the model gateway.
type InterviewService struct {
	LLM   Generator
	Store *store.SessionStore
}

func NewInterviewService(llm Generator, st *store.SessionStore) *InterviewService {
	return &InterviewService{LLM: llm, Store: st}
}

// Start creates a session at the basic stage and asks its first question.
func (s *InterviewService) Start(ctx context.Context, jobRole, resumeText string) (*dtos.QuestionResponse, error) {
	sess := s.Store.Create(jobRole, resumeText)

	raw, err := s.LLM.Generate(ctx, interview.PromptFor(sess.Stage, jobRole, resumeText), questionMaxTokens)
	if err != nil {
		s.Store.Delete(sess.ID)
		return nil, err
	}
	question := extract.Question(raw)

	if err := s.Store.Update(sess.ID, func(live *models.InterviewSession) {
		live.LastQuestion = question
	}); err != nil {
		return nil, err
	}

	return &dtos.QuestionResponse{
		SessionID:     sess.ID,
		Question:      question,
		Stage:         sess.Stage,
		QuestionCount: 1,
	}, nil
}

// Answer records the candidate's answer to the current question. On the
// final stage it generates feedback and destroys the session; otherwise it
// advances one stage and asks the next question. The bool result is true
// when the interview completed.
func (s *InterviewService) Answer(ctx context.Context, sessionID, answer string) (*dtos.QuestionResponse, *dtos.FeedbackResponse, error) {
	if err := s.Store.Update(sessionID, func(live *models.InterviewSession) {
		live.History = append(live.History, models.QA{Question: live.LastQuestion, Answer: answer})
	}); err != nil {
		return nil, nil, err
	}

	sess, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, nil, err
	}

	next, ok := interview.Next(sess.Stage)
	if !ok {
		// salary answered: the interview is over
		feedback, err := s.generateFeedback(ctx, &sess)
		if err != nil {
			return nil, nil, err
		}
		s.Store.Delete(sessionID)
		return nil, &dtos.FeedbackResponse{Feedback: feedback, Completed: true}, nil
	}

	raw, err := s.LLM.Generate(ctx, interview.PromptFor(next, sess.JobRole, sess.ResumeText), questionMaxTokens)
	if err != nil {
		return nil, nil, err
	}
	question := extract.Question(raw)

	if err := s.Store.Update(sessionID, func(live *models.InterviewSession) {
		live.Stage = next
		live.LastQuestion = question
	}); err != nil {
		return nil, nil, err
	}

	return &dtos.QuestionResponse{
		Question:      question,
		Stage:         next,
		QuestionCount: len(sess.History) + 1,
	}, nil, nil
}

// Clarify asks the model to rephrase the session's last question and
// overwrites it with the rephrasing.
func (s *InterviewService) Clarify(ctx context.Context, sessionID string) (*dtos.QuestionResponse, error) {
	sess, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.LastQuestion == "" {
		return nil, ErrNoQuestion
	}

	prompt := fmt.Sprintf("Rephrase the following interview question so it is easier to understand, without changing what it asks. Reply with only the rephrased question, nothing else.\n\nQUESTION: %s", sess.LastQuestion)
	raw, err := s.LLM.Generate(ctx, prompt, questionMaxTokens)
	if err != nil {
		return nil, err
	}
	question := extract.Question(raw)

	if err := s.Store.Update(sessionID, func(live *models.InterviewSession) {
		live.LastQuestion = question
	}); err != nil {
		return nil, err
	}

	return &dtos.QuestionResponse{Question: question, Stage: sess.Stage}, nil
}

// Finish ends the interview early: feedback over whatever history exists,
// then the session is destroyed.
func (s *InterviewService) Finish(ctx context.Context, sessionID string) (*dtos.FeedbackResponse, error) {
	sess, err := s.Store.Get(sessionID)
	if err != nil {
		return nil, err
	}

	feedback, err := s.generateFeedback(ctx, &sess)
	if err != nil {
		return nil, err
	}
	s.Store.Delete(sessionID)
	return &dtos.FeedbackResponse{Feedback: feedback, Completed: true}, nil
}

func (s *InterviewService) generateFeedback(ctx context.Context, sess *models.InterviewSession) (string, error) {
	var transcript strings.Builder
	for i, qa := range sess.History {
		fmt.Fprintf(&transcript, "Q%d: %s\nA%d: %s\n\n", i+1, qa.Question, i+1, qa.Answer)
	}

	prompt := fmt.Sprintf(`You are an experienced interview coach. Below is the transcript of a mock interview for a %s position. Give the candidate constructive feedback: overall impression, strengths, weaknesses, and concrete advice for each weak answer. Write in plain prose addressed to the candidate.

TRANSCRIPT:
%s`, sess.JobRole, transcript.String())

	return s.LLM.Generate(ctx, prompt, feedbackMaxTokens)
}
