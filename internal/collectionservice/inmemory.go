package collectionservice

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/fyerfyer/collkit/collection"
	"github.com/fyerfyer/collkit/compare"
	"github.com/fyerfyer/collkit/deque"
	"github.com/fyerfyer/collkit/internal/workpool"
	"github.com/fyerfyer/collkit/persist"
	"github.com/fyerfyer/collkit/set"
	"github.com/fyerfyer/collkit/vector"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InMemoryService 实现了Service接口的内存存储版本
// 集合本身不做同步，所有访问都经过服务的读写锁
type InMemoryService struct {
	// 集合名称到集合实例的映射
	collections map[string]*entry
	// 保护映射和集合的读写锁
	mu sync.RWMutex

	store  persist.Store
	codec  persist.Codec
	logger *zap.Logger

	// SaveAll 和 LoadAll 使用的工作协程数量
	parallelism int
}

// entry 包含集合及其元数据
type entry struct {
	id        string
	kind      Kind
	opts      Options
	coll      collection.Collection[string]
	createdAt time.Time
	stats     Stats
}

// ServiceOption 函数类型用于设置服务选项
type ServiceOption func(*InMemoryService)

// WithStore 设置快照存储
func WithStore(store persist.Store) ServiceOption {
	return func(s *InMemoryService) {
		s.store = store
	}
}

// WithCodec 设置快照压缩方式
func WithCodec(codec persist.Codec) ServiceOption {
	return func(s *InMemoryService) {
		s.codec = codec
	}
}

// WithLogger 设置日志
func WithLogger(logger *zap.Logger) ServiceOption {
	return func(s *InMemoryService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithParallelism 设置批量保存和加载的并发数
func WithParallelism(n int) ServiceOption {
	return func(s *InMemoryService) {
		if n > 0 {
			s.parallelism = n
		}
	}
}

// NewInMemoryService 创建一个新的内存集合服务
func NewInMemoryService(options ...ServiceOption) *InMemoryService {
	s := &InMemoryService{
		collections: make(map[string]*entry),
		codec:       persist.CodecZstd,
		logger:      zap.NewNop(),
		parallelism: 4,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// newCollection 按类型创建字符串集合
func newCollection(opts Options) (collection.Collection[string], error) {
	hashOptions := []set.Option[string]{
		set.WithCapacity[string](opts.Capacity),
		set.WithMaxFillRatio[string](opts.MaxFillRatio),
	}

	switch opts.Kind {
	case SortedSet:
		return set.NewSorted[string](), nil
	case SortedMultiSet:
		return set.NewSortedMulti[string](), nil
	case HashSet:
		return set.NewHashWith(compare.StringHash, compare.EqualOf[string], hashOptions...), nil
	case HashMultiSet:
		return set.NewHashMultiWith(compare.StringHash, compare.EqualOf[string], hashOptions...), nil
	case Deque:
		return deque.New[string](deque.WithCapacity[string](opts.Capacity)), nil
	case Vector:
		return vector.New[string](), nil
	case SortedVector:
		return vector.NewSorted[string](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, opts.Kind)
	}
}

// CreateCollection 创建一个新集合
func (s *InMemoryService) CreateCollection(name string, opts Options) (Info, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.createLocked(name, opts)
	if err != nil {
		return Info{}, err
	}

	s.logger.Info("collection created",
		zap.String("name", name),
		zap.String("id", e.id),
		zap.String("kind", string(opts.Kind)))
	return e.info(name), nil
}

func (s *InMemoryService) createLocked(name string, opts Options) (*entry, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name must not be empty")
	}
	if _, exists := s.collections[name]; exists {
		return nil, fmt.Errorf("%w: %s", ErrCollectionExists, name)
	}

	coll, err := newCollection(opts)
	if err != nil {
		return nil, err
	}

	e := &entry{
		id:        uuid.New().String(),
		kind:      opts.Kind,
		opts:      opts,
		coll:      coll,
		createdAt: time.Now(),
	}
	s.collections[name] = e
	return e, nil
}

func (s *InMemoryService) lookup(name string) (*entry, error) {
	e, exists := s.collections[name]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrCollectionNotFound, name)
	}
	return e, nil
}

func (e *entry) info(name string) Info {
	info := Info{
		ID:        e.id,
		Name:      name,
		Kind:      e.kind,
		Entries:   e.coll.Entries(),
		CreatedAt: e.createdAt,
		Stats:     e.stats,
	}
	if hashed, ok := e.coll.(set.Hashed); ok {
		info.Capacity = hashed.Capacity()
		info.FillRatio = hashed.FillRatio()
	}
	return info
}

// Get 获取指定名称的集合
func (s *InMemoryService) Get(name string) (collection.Collection[string], error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.coll, nil
}

// Info 获取集合信息
func (s *InMemoryService) Info(name string) (Info, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.lookup(name)
	if err != nil {
		return Info{}, err
	}
	return e.info(name), nil
}

// List 按名称顺序列出所有集合
func (s *InMemoryService) List() []Info {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]Info, 0, len(s.collections))
	for name, e := range s.collections {
		result = append(result, e.info(name))
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

// Insert 插入元素，唯一集合拒绝的元素计入 Rejected
func (s *InMemoryService) Insert(name string, items ...string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(name)
	if err != nil {
		return 0, err
	}

	accepted := 0
	for _, item := range items {
		if e.coll.Insert(item) {
			accepted++
			e.stats.Inserted++
		} else {
			e.stats.Rejected++
		}
	}

	s.logger.Debug("items inserted",
		zap.String("name", name),
		zap.Int("accepted", accepted),
		zap.Int("rejected", len(items)-accepted))
	return accepted, nil
}

// Remove 删除第一个等价元素
func (s *InMemoryService) Remove(name, item string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(name)
	if err != nil {
		return false, err
	}
	removed := e.coll.Remove(item)
	if removed {
		e.stats.Removed++
	}
	return removed, nil
}

// RemoveAll 删除所有等价元素
func (s *InMemoryService) RemoveAll(name, item string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	n := e.coll.RemoveAll(item)
	e.stats.Removed += uint64(n)
	return n, nil
}

// Contains 检查元素是否存在
func (s *InMemoryService) Contains(name, item string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.lookup(name)
	if err != nil {
		return false, err
	}
	return e.coll.Contains(item), nil
}

// Occurrences 返回等价元素的数量
func (s *InMemoryService) Occurrences(name, item string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.lookup(name)
	if err != nil {
		return 0, err
	}
	return e.coll.OccurrencesOf(item), nil
}

// Items 按迭代顺序返回所有元素
func (s *InMemoryService) Items(name string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	return e.coll.ToSlice(), nil
}

// Pop 从双端队列的一端取出元素，队列为空时返回越界错误
func (s *InMemoryService) Pop(name string, back bool) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(name)
	if err != nil {
		return "", err
	}
	d, ok := e.coll.(*deque.Deque[string])
	if !ok {
		return "", fmt.Errorf("%w: %s is a %s", ErrNotSequence, name, e.kind)
	}

	var item string
	if back {
		item, err = d.RemoveLast()
	} else {
		item, err = d.RemoveFirst()
	}
	if err != nil {
		return "", err
	}
	e.stats.Removed++
	return item, nil
}

// Resize 修改哈希集合的桶数量
func (s *InMemoryService) Resize(name string, buckets int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(name)
	if err != nil {
		return err
	}
	hashed, ok := e.coll.(set.Hashed)
	if !ok {
		return fmt.Errorf("%w: %s is a %s", ErrNotHashed, name, e.kind)
	}
	if err := hashed.Resize(buckets); err != nil {
		return err
	}
	e.stats.Resized++

	s.logger.Info("collection resized",
		zap.String("name", name),
		zap.Int("buckets", buckets),
		zap.Float64("fill_ratio", hashed.FillRatio()))
	return nil
}

// Clear 清空集合
func (s *InMemoryService) Clear(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.lookup(name)
	if err != nil {
		return err
	}
	e.stats.Removed += uint64(e.coll.Entries())
	e.coll.Clear()
	return nil
}

// Delete 删除集合
func (s *InMemoryService) Delete(name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(name); err != nil {
		return err
	}
	delete(s.collections, name)

	s.logger.Info("collection deleted", zap.String("name", name))
	return nil
}

// Save 将集合写入快照存储，键为集合名称
func (s *InMemoryService) Save(ctx context.Context, name string) error {
	if s.store == nil {
		return ErrNoStore
	}

	s.mu.RLock()
	e, err := s.lookup(name)
	if err != nil {
		s.mu.RUnlock()
		return err
	}
	items := e.coll.ToSlice()
	kind := e.kind
	meta := e.snapshotMeta()
	s.mu.RUnlock()

	data, err := persist.Marshal(name, string(kind), items, s.codec, meta...)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := s.store.Put(ctx, name, data); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	s.logger.Info("collection saved",
		zap.String("name", name),
		zap.Int("entries", len(items)),
		zap.Int("bytes", len(data)),
		zap.String("codec", string(s.codec)))
	return nil
}

// Load 从快照存储恢复集合
func (s *InMemoryService) Load(ctx context.Context, name string) (Info, error) {
	if s.store == nil {
		return Info{}, ErrNoStore
	}

	data, err := s.store.Get(ctx, name)
	if err != nil {
		return Info{}, err
	}
	header, items, err := persist.Unmarshal[string](data)
	if err != nil {
		s.logger.Warn("snapshot rejected", zap.String("name", name), zap.Error(err))
		return Info{}, err
	}
	opts, err := optionsFromHeader(header)
	if err != nil {
		return Info{}, err
	}
	kind := opts.Kind

	s.mu.Lock()
	defer s.mu.Unlock()

	e, err := s.createLocked(name, opts)
	if err != nil {
		return Info{}, err
	}
	for _, item := range items {
		e.coll.Insert(item)
	}

	s.logger.Info("collection loaded",
		zap.String("name", name),
		zap.String("kind", string(kind)),
		zap.Int("entries", len(items)))
	return e.info(name), nil
}

const (
	metaCapacity     = "capacity"
	metaMaxFillRatio = "max-fill-ratio"
)

// snapshotMeta 记录重建集合所需的选项，哈希集合记录当前的桶数量
func (e *entry) snapshotMeta() []persist.SaveOption {
	capacity := e.opts.Capacity
	if hashed, ok := e.coll.(set.Hashed); ok {
		capacity = hashed.Capacity()
	}

	var meta []persist.SaveOption
	if capacity > 0 {
		meta = append(meta, persist.WithMeta(metaCapacity, strconv.Itoa(capacity)))
	}
	if e.opts.MaxFillRatio > 0 {
		meta = append(meta, persist.WithMeta(metaMaxFillRatio,
			strconv.FormatFloat(e.opts.MaxFillRatio, 'g', -1, 64)))
	}
	return meta
}

func optionsFromHeader(header persist.Header) (Options, error) {
	kind, err := ParseKind(header.Kind)
	if err != nil {
		return Options{}, err
	}
	opts := Options{Kind: kind}

	if v, ok := header.Meta[metaCapacity]; ok {
		if opts.Capacity, err = strconv.Atoi(v); err != nil {
			return Options{}, fmt.Errorf("%w: capacity %q", persist.ErrInvalidSnapshot, v)
		}
	}
	if v, ok := header.Meta[metaMaxFillRatio]; ok {
		if opts.MaxFillRatio, err = strconv.ParseFloat(v, 64); err != nil {
			return Options{}, fmt.Errorf("%w: max fill ratio %q", persist.ErrInvalidSnapshot, v)
		}
	}
	return opts, nil
}

// SaveAll 并发保存所有集合，返回所有失败的合并错误
func (s *InMemoryService) SaveAll(ctx context.Context) error {
	if s.store == nil {
		return ErrNoStore
	}

	tasks := make(map[string]workpool.Task)
	for _, info := range s.List() {
		name := info.Name
		tasks[name] = func(context.Context) error {
			return s.Save(ctx, name)
		}
	}
	return workpool.Run(ctx, tasks, s.poolOptions(len(tasks))...)
}

// LoadAll 并发加载存储中所有尚未打开的快照
func (s *InMemoryService) LoadAll(ctx context.Context) ([]string, error) {
	names, err := s.Snapshots(ctx)
	if err != nil {
		return nil, err
	}

	var (
		mu     sync.Mutex
		loaded []string
	)
	tasks := make(map[string]workpool.Task)
	for _, name := range names {
		if _, err := s.Info(name); err == nil {
			continue
		}
		name := name
		tasks[name] = func(context.Context) error {
			if _, err := s.Load(ctx, name); err != nil {
				return err
			}
			mu.Lock()
			loaded = append(loaded, name)
			mu.Unlock()
			return nil
		}
	}

	err = workpool.Run(ctx, tasks, s.poolOptions(len(tasks))...)
	sort.Strings(loaded)
	return loaded, err
}

func (s *InMemoryService) poolOptions(tasks int) []workpool.Option {
	return []workpool.Option{
		workpool.WithWorkers(min(s.parallelism, max(tasks, 1))),
		workpool.WithQueueCapacity(max(tasks, 1)),
		workpool.WithLogger(s.logger),
	}
}

// Snapshots 列出快照存储中的所有快照
func (s *InMemoryService) Snapshots(ctx context.Context) ([]string, error) {
	if s.store == nil {
		return nil, ErrNoStore
	}
	return s.store.List(ctx)
}

// Close 清空所有集合并关闭快照存储
func (s *InMemoryService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.collections = make(map[string]*entry)

	if closer, ok := s.store.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
