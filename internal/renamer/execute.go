package renamer

import (
	"os"

	"go.uber.org/zap"
)

// Execute applies a plan built by BuildPlan. With dryRun set it only
// logs what would happen. A rename failure is logged and counted but
// does not stop the remaining entries. Returns the number of files
// renamed and the number of failures.
func Execute(ops []Op, dryRun bool, log *zap.Logger) (renamed, failed int) {
	for _, op := range ops {
		if dryRun {
			log.Info("would rename",
				zap.String("from", op.OldName),
				zap.String("to", op.NewName))
			continue
		}
		if err := os.Rename(op.OldPath, op.NewPath); err != nil {
			log.Error("rename failed",
				zap.String("from", op.OldName),
				zap.String("to", op.NewName),
				zap.Error(err))
			failed++
			continue
		}
		log.Info("renamed",
			zap.String("from", op.OldName),
			zap.String("to", op.NewName))
		renamed++
	}
	return renamed, failed
}
