package layout

import (
	"encoding/json"
	"os"
)

// DebugEntry 记录一张输出图片的名称与布局。
type DebugEntry struct {
	Name string `json:"name"`
	Page *Page  `json:"page"`
}

// WriteDebugJSON 将布局结果输出为 JSON，便于调试或可视化。
func WriteDebugJSON(entries []DebugEntry, path string) error {
	if len(entries) == 0 {
		return nil
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
