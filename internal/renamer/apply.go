package renamer

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/suraj274001/bulk-image-renamer/internal/fsops"
	"github.com/suraj274001/bulk-image-renamer/internal/model"
)

// ErrPlanTooShort is returned when the plan has fewer entries than the
// uploaded file set. The fault is raised at the first unmatched index,
// so files written before it stay on disk.
var ErrPlanTooShort = errors.New("rename plan shorter than file count")

// ParsePlan decodes the client-supplied JSON plan. Extra fields on the
// instructions are ignored.
func ParsePlan(raw string) (model.Plan, error) {
	var plan model.Plan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		return nil, fmt.Errorf("parse rename plan: %w", err)
	}
	return plan, nil
}

// ApplyPlan writes each uploaded file under the target name at the same
// plan index. The output directory is created on demand. Processing
// stops at the first failure; the count of files already written is
// returned alongside the error.
func ApplyPlan(dir string, files []model.UploadedFile, plan model.Plan, log *zap.Logger) (int, error) {
	if err := fsops.EnsureDir(dir); err != nil {
		return 0, err
	}

	count := 0
	for i, f := range files {
		if i >= len(plan) {
			return count, fmt.Errorf("file %d (%s): %w", i, f.OriginalName, ErrPlanTooShort)
		}
		path, err := fsops.WriteFile(dir, plan[i].New, f.Data)
		if err != nil {
			return count, err
		}
		log.Debug("wrote file",
			zap.String("original", f.OriginalName),
			zap.String("path", path),
			zap.Int("bytes", len(f.Data)))
		count++
	}
	return count, nil
}
