package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"google.golang.org/genai"

	"github.com/yourusername/resumecoach-api/internal/model"
)

// Safe replies returned instead of errors on the conversational path. Chat
// must always answer with something readable.
const (
	unavailableReply = "I apologize, but I am currently unavailable. Please check the server configuration."
	errorReply       = "I encountered an error processing your request. Please try again later."
)

// GeminiClient wraps the Google generative-language API. Construct it once
// and inject it; when no API key is configured the client stays in an
// unavailable state and every conversational call returns a safe fallback
// string instead of failing.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, modelName string) *GeminiClient {
	if apiKey == "" {
		log.Warn().Msg("GEMINI_API_KEY not set, AI replies will use fallback text")
		return &GeminiClient{model: modelName}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Error().Err(err).Msg("Failed to initialize Gemini client, AI replies will use fallback text")
		return &GeminiClient{model: modelName}
	}

	return &GeminiClient{client: client, model: modelName}
}

// Available reports whether the underlying API client was configured.
func (g *GeminiClient) Available() bool {
	return g.client != nil
}

const chatSystemPrompt = `You are a helpful, expert career and technical assistant.
Your goal is to help developers with coding questions, interview preparation, and career advice grounded in their resume.
Be concise, accurate, and provide concrete examples where appropriate.`

// GenerateReply produces the assistant's next message for a conversation.
// The history includes the newest user turn. Failures never surface as
// errors; callers always get a displayable string.
func (g *GeminiClient) GenerateReply(ctx context.Context, history []model.ChatTurn, resumeContext string) string {
	if !g.Available() {
		return unavailableReply
	}

	if resumeContext == "" {
		resumeContext = "No specific context provided."
	}
	system := chatSystemPrompt + "\n\nContext provided by user (Resume/Background):\n" + resumeContext

	contents := make([]*genai.Content, 0, len(history))
	for _, turn := range history {
		role := genai.RoleUser
		if turn.Role == model.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, &genai.Content{
			Role:  role,
			Parts: []*genai.Part{{Text: turn.Content}},
		})
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		MaxOutputTokens:   1000,
	})
	if err != nil {
		log.Error().Err(err).Msg("Gemini chat request failed")
		return errorReply
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return errorReply
	}
	return text
}

// ── Interview question generation ─────────────────────

const questionSystemPrompt = `You are a mock-interview question writer.

Always respond with ONLY a JSON array (no markdown, no backticks, no explanation) of question objects:
[
  {
    "question": "Tell me about a time you had to debug a production incident.",
    "category": "behavioral",
    "hint": "Structure the answer around situation, action, and measurable result."
  }
]

Rules:
- Categories: behavioral, technical, or situational.
- If candidate context is provided, ground questions in their actual skills and experience.
- Questions must be answerable verbally in 2-3 minutes.
- Every object needs all three fields; use an empty string hint only when no hint helps.`

// GenerateInterviewQuestions asks Gemini for count questions tailored to the
// candidate context and session parameters.
func (g *GeminiClient) GenerateInterviewQuestions(ctx context.Context, resumeContext, sessionType, targetRole, difficulty string, count int) ([]model.InterviewQuestion, error) {
	prompt := fmt.Sprintf("Write %d %s interview questions at %s difficulty", count, sessionType, difficulty)
	if targetRole != "" {
		prompt += " for a candidate targeting the role: " + targetRole
	}
	prompt += ".\n\nCandidate context:\n"
	if resumeContext != "" {
		prompt += resumeContext
	} else {
		prompt += "No resume on file; ask generally applicable questions."
	}
	prompt += "\n\nReturn the JSON array."

	var raw []struct {
		Question string `json:"question"`
		Category string `json:"category"`
		Hint     string `json:"hint"`
	}
	if err := g.generateJSON(ctx, questionSystemPrompt, prompt, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("no questions generated")
	}

	questions := make([]model.InterviewQuestion, 0, len(raw))
	for _, q := range raw {
		if strings.TrimSpace(q.Question) == "" {
			continue
		}
		questions = append(questions, model.InterviewQuestion{
			ID:       uuid.New(),
			Question: q.Question,
			Category: q.Category,
			Hint:     q.Hint,
		})
	}
	if len(questions) == 0 {
		return nil, fmt.Errorf("no usable questions generated")
	}
	return questions, nil
}

// ── Answer evaluation ─────────────────────────────────

const evaluationSystemPrompt = `You are a mock-interview answer evaluator.

Always respond with ONLY a JSON object (no markdown, no backticks, no explanation):
{
  "score": 72,
  "strengths": ["Clear structure", "Concrete metrics"],
  "improvements": ["Quantify the outcome", "Mention the team's role"],
  "feedback": "A short paragraph of direct, actionable feedback."
}

Rules:
- Score 0-100: 90+ exceptional, 70-89 solid, 50-69 needs work, below 50 weak.
- 1-4 strengths and 1-4 improvements, each one short sentence.
- Judge only what was said. Do not invent details the answer never gave.
- If candidate context is provided, weigh whether the answer uses their real background.`

// EvaluateAnswer scores a single interview answer against its question.
func (g *GeminiClient) EvaluateAnswer(ctx context.Context, question, answer, resumeContext string) (*model.AnswerEvaluation, error) {
	prompt := fmt.Sprintf("Question:\n%s\n\nCandidate's answer:\n%s", question, answer)
	if resumeContext != "" {
		prompt += "\n\nCandidate context:\n" + resumeContext
	}
	prompt += "\n\nReturn the JSON evaluation."

	var eval model.AnswerEvaluation
	if err := g.generateJSON(ctx, evaluationSystemPrompt, prompt, &eval); err != nil {
		return nil, err
	}
	return &eval, nil
}

// ── Shared plumbing ───────────────────────────────────

// generateJSON sends one structured-output request and unmarshals the reply
// into out. Unlike the conversational path, failures here are real errors
// for the handler to translate.
func (g *GeminiClient) generateJSON(ctx context.Context, system, prompt string, out any) error {
	if !g.Available() {
		return fmt.Errorf("Gemini API key not configured")
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{{Role: genai.RoleUser, Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
			MaxOutputTokens:   2000,
		})
	if err != nil {
		return fmt.Errorf("calling Gemini API: %w", err)
	}

	text := stripCodeFences(strings.TrimSpace(resp.Text()))
	if text == "" {
		return fmt.Errorf("empty response from Gemini")
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		return fmt.Errorf("parsing Gemini response: %w (raw: %s)", err, text)
	}
	return nil
}

// stripCodeFences removes markdown ```json ... ``` wrappers the model
// sometimes adds despite instructions
func stripCodeFences(text string) string {
	if strings.HasPrefix(text, "```") {
		if idx := strings.Index(text, "\n"); idx != -1 {
			text = text[idx+1:]
		}
		if idx := strings.LastIndex(text, "```"); idx != -1 {
			text = text[:idx]
		}
		text = strings.TrimSpace(text)
	}
	return text
}
