package service

import (
	"sync"

	"quiz_prep_backend/internal/model"
)

// RetentionPolicy 每用户每难度最多保留多少次答题历史。
// 写路径（创建后清理）和读路径（历史列表过滤）共用同一份上限，
// 配置热更新时通过 SetMax 原子替换。
type RetentionPolicy struct {
	mu  sync.RWMutex
	max int
}

func NewRetentionPolicy(maxPerLevel int) *RetentionPolicy {
	if maxPerLevel <= 0 {
		maxPerLevel = 2
	}
	return &RetentionPolicy{max: maxPerLevel}
}

func (p *RetentionPolicy) Max() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.max
}

func (p *RetentionPolicy) SetMax(maxPerLevel int) {
	if maxPerLevel <= 0 {
		return
	}
	p.mu.Lock()
	p.max = maxPerLevel
	p.mu.Unlock()
}

// Apply 对新到旧排列的列表做贪心保留：每个难度取前 max 条，
// 其余进淘汰集。难度不在枚举内的记录不参与统计：既不保留也不淘汰，
// 历史列表看不到它们，但清理路径也绝不删它们。
// 入参必须已按创建时间倒序。
func (p *RetentionPolicy) Apply(attempts []model.Attempt) (kept, pruned []model.Attempt) {
	max := p.Max()
	counts := make(map[model.QuestionLevel]int, len(model.LevelOrder))

	for _, attempt := range attempts {
		if !attempt.Level.Valid() {
			continue
		}
		if counts[attempt.Level] >= max {
			pruned = append(pruned, attempt)
			continue
		}
		counts[attempt.Level]++
		kept = append(kept, attempt)
	}
	return kept, pruned
}
