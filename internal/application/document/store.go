package document

import (
	"sync"

	"github.com/google/uuid"

	"github.com/MrJerard79809/capstone-scribe/internal/domain/entity"
	"github.com/MrJerard79809/capstone-scribe/pkg/metrics"
)

// Store 进程内文档存储，文档随服务重启丢失
type Store struct {
	mu   sync.RWMutex
	docs map[string]*entity.Document
}

// NewStore 创建空的文档存储
func NewStore() *Store {
	return &Store{docs: make(map[string]*entity.Document)}
}

// Put 保存文档并分配新 ID
func (s *Store) Put(doc *entity.Document) string {
	id := uuid.NewString()
	doc.ID = id

	s.mu.Lock()
	s.docs[id] = doc
	s.mu.Unlock()

	metrics.ActiveDocuments.Inc()
	return id
}

// Get 按 ID 取出文档，未找到返回 false
func (s *Store) Get(id string) (*entity.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

// Delete 删除文档，返回是否存在
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	metrics.ActiveDocuments.Dec()
	return true
}

// Len 当前文档数
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}
