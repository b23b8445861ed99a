package snapshot

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sjlee/krx-insight/internal/contracts"
)

// Load reads a market snapshot from a JSON file.
// 형식: TickerMetric 객체 배열. 수집 레이어가 떨궈 놓은 파일을 CLI가 읽는다.
func Load(path string) ([]contracts.TickerMetric, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}

	var records []contracts.TickerMetric
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w", err)
	}

	return records, nil
}

// LoadAnswers reads survey answers from a JSON file.
// 형식: 문항 id → 선택지 인덱스(0-base) 객체, 예: {"q1": 2, "q2": 4}.
func LoadAnswers(path string) (map[string]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers: %w", err)
	}

	var answers map[string]int
	if err := json.Unmarshal(data, &answers); err != nil {
		return nil, fmt.Errorf("parse answers: %w", err)
	}

	return answers, nil
}
