package screen

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/fadilmartias/sustainability-judge/internal/dto"
)

type Sender string

const (
	SenderAI   Sender = "ai"
	SenderUser Sender = "user"
)

const greeting = "Hi! I'm your sustainability food judge. Ask me about any food item and I'll evaluate its environmental impact! 🌱"

type Message struct {
	ID        string
	Sender    Sender
	Text      string
	Judgment  *dto.FoodJudgment
	Timestamp time.Time
}

type ChatScreen struct {
	api    API
	notify Notifier
	now    func() time.Time

	mu       sync.Mutex
	messages []Message
	loading  bool
	nextID   int
}

func NewChatScreen(api API, notify Notifier) *ChatScreen {
	s := &ChatScreen{api: api, notify: notify, now: time.Now}
	s.append(Message{Sender: SenderAI, Text: greeting})
	return s
}

func (s *ChatScreen) Messages() []Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.messages)
}

func (s *ChatScreen) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastJudgment returns the most recent judgment shown in the chat.
func (s *ChatScreen) LastJudgment() (dto.FoodJudgment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.messages) - 1; i >= 0; i-- {
		if j := s.messages[i].Judgment; j != nil {
			return *j, true
		}
	}
	return dto.FoodJudgment{}, false
}

func (s *ChatScreen) append(m Message) Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	m.ID = strconv.Itoa(s.nextID)
	m.Timestamp = s.now()
	s.messages = append(s.messages, m)
	return m
}

// Send asks the judge about text. Blank input and sends while a previous
// request is in flight are ignored; the return value reports whether the
// message was sent.
func (s *ChatScreen) Send(ctx context.Context, text string) bool {
	text = strings.TrimSpace(text)
	s.mu.Lock()
	if text == "" || s.loading {
		s.mu.Unlock()
		return false
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	s.append(Message{Sender: SenderUser, Text: text})

	judgment, err := s.api.Judge(ctx, text)
	if err != nil {
		s.append(Message{
			Sender: SenderAI,
			Text:   fmt.Sprintf("Sorry, I couldn't evaluate that food item. Error: %v", err),
		})
		return true
	}
	s.append(Message{Sender: SenderAI, Text: FormatJudgment(judgment), Judgment: &judgment})
	return true
}

func (s *ChatScreen) AddToCart(ctx context.Context, judgment dto.FoodJudgment) {
	if _, err := s.api.AddToCart(ctx, judgment); err != nil {
		s.notify.Alert("Error", fmt.Sprintf("Failed to add item to cart: %v", err))
		return
	}
	s.notify.Alert("Added to Cart", fmt.Sprintf("%s has been added to your cart!", judgment.FoodName))
}

// FormatJudgment is the chat reply for a judgment.
func FormatJudgment(j dto.FoodJudgment) string {
	return fmt.Sprintf("%s %s\n\nSustainability Score: %g%% (%s)\n\n%s\n\n💡 %s",
		j.RatingEmoji, j.FoodName, j.OverallScore, j.OverallRating, j.Rationale, j.Recommendation)
}
