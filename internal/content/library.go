// Package content holds the quest and question catalog: the built-in bank
// that ships with the game plus quests generated at runtime by an LLM.
package content

import (
	"sync"

	"github.com/homeworkgoat/goat/internal/quest"
)

// Library is the in-memory catalog of quests and questions. Safe for
// concurrent use.
type Library struct {
	mu        sync.RWMutex
	questions map[string]quest.Question
	quests    []quest.Quest
}

// NewLibrary returns a Library seeded with the built-in bank.
func NewLibrary() *Library {
	lib := &Library{questions: make(map[string]quest.Question)}
	for _, q := range builtinQuestions {
		lib.questions[q.ID] = q
	}
	lib.quests = append(lib.quests, builtinQuests...)
	return lib
}

// Quests returns all quests in catalog order.
func (l *Library) Quests() []quest.Quest {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]quest.Quest, len(l.quests))
	copy(out, l.quests)
	return out
}

// QuestByID looks up a quest by its ID.
func (l *Library) QuestByID(id string) (quest.Quest, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, q := range l.quests {
		if q.ID == id {
			return q, true
		}
	}
	return quest.Quest{}, false
}

// Question looks up a single question by ID.
func (l *Library) Question(id string) (quest.Question, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	q, ok := l.questions[id]
	return q, ok
}

// ResolveQuestions maps question IDs to questions, preserving order.
// Unknown IDs are skipped rather than failing the whole quest, so a quest
// referencing a question that was pruned still plays with what remains.
func (l *Library) ResolveQuestions(ids []string) []quest.Question {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]quest.Question, 0, len(ids))
	for _, id := range ids {
		if q, ok := l.questions[id]; ok {
			out = append(out, q)
		}
	}
	return out
}

// AddQuest registers a generated quest and its questions in the catalog.
func (l *Library) AddQuest(q quest.Quest, questions []quest.Question) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, question := range questions {
		l.questions[question.ID] = question
	}
	l.quests = append(l.quests, q)
}
