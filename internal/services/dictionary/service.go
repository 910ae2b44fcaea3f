package dictionary

import (
	"bufio"
	"context"
	"os"
	"strings"
	"sync"

	"github.com/jabibo/wordbattle-backend-sub001/internal/model"
	"github.com/jabibo/wordbattle-backend-sub001/internal/storage"
)

// Oracle is the word-validity predicate the move validator consumes.
// It is pure: same language and text always give the same answer.
type Oracle interface {
	IsValidWord(lang model.Language, text string) bool
}

// Service provides per-language word validation backed by in-memory
// word sets, optionally persisted through storage
type Service struct {
	storage storage.Storage

	mu    sync.RWMutex
	words map[model.Language]map[string]struct{}
}

// New creates a new dictionary service
func New(storage storage.Storage) *Service {
	return &Service{
		storage: storage,
		words:   make(map[model.Language]map[string]struct{}),
	}
}

// LoadFromStorage loads a language's word list from storage
func (s *Service) LoadFromStorage(ctx context.Context, lang model.Language) error {
	words, err := s.storage.GetDictionaryWords(ctx, lang)
	if err != nil {
		return err
	}
	s.loadWords(lang, words)
	return nil
}

// LoadFromFile loads a language's word list from a file (one word per
// line) and saves it to storage for future use
func (s *Service) LoadFromFile(ctx context.Context, lang model.Language, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	if err := s.storage.SaveDictionaryWords(ctx, lang, words); err != nil {
		return err
	}

	s.loadWords(lang, words)
	return nil
}

// LoadWords directly loads a slice of words for a language (useful
// for testing)
func (s *Service) LoadWords(lang model.Language, words []string) {
	s.loadWords(lang, words)
}

func (s *Service) loadWords(lang model.Language, words []string) {
	set := make(map[string]struct{}, len(words))
	for _, word := range words {
		// Store lowercase for case-insensitive matching
		set[strings.ToLower(word)] = struct{}{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words[lang] = set
}

// IsValidWord checks if a word exists in the language's dictionary.
// Words must be at least 2 characters; an unloaded language validates
// nothing.
func (s *Service) IsValidWord(lang model.Language, text string) bool {
	if len([]rune(text)) < 2 {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	set, ok := s.words[lang]
	if !ok {
		return false
	}
	_, ok = set[strings.ToLower(text)]
	return ok
}

// IsLoaded returns whether a language's word list has been loaded
func (s *Service) IsLoaded(lang model.Language) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.words[lang]
	return ok
}

// WordCount returns the number of words loaded for a language
func (s *Service) WordCount(lang model.Language) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words[lang])
}

var _ Oracle = (*Service)(nil)
