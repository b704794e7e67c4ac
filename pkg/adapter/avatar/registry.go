// 指示: miu200521358
package avatar

import (
	"sort"
	"sync"
)

// Registry はアニメーショングラフを保持するアバターの一覧を表す。
type Registry struct {
	mu       sync.Mutex
	graphs   map[string]struct{}
	removals int
}

// NewRegistry は指定IDのアバターを登録したRegistryを生成する。
func NewRegistry(ids ...string) *Registry {
	r := &Registry{graphs: map[string]struct{}{}}
	for _, id := range ids {
		r.Register(id)
	}
	return r
}

// Register はアバターにアニメーショングラフを持たせる。空IDは無視する。
func (r *Registry) Register(id string) {
	if id == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.graphs[id] = struct{}{}
}

// AvatarsWithAnimationGraph はアニメーショングラフを持つアバターIDを昇順で返す。
func (r *Registry) AvatarsWithAnimationGraph() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make([]string, 0, len(r.graphs))
	for id := range r.graphs {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// RemoveAnimationGraph はアバターからアニメーショングラフを外す。
func (r *Registry) RemoveAnimationGraph(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.graphs[id]; !ok {
		return
	}
	delete(r.graphs, id)
	r.removals++
}

// HasAnimationGraph はアバターがアニメーショングラフを持つか判定する。
func (r *Registry) HasAnimationGraph(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.graphs[id]
	return ok
}

// Removals は外したアニメーショングラフの累計数を返す。
func (r *Registry) Removals() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removals
}
