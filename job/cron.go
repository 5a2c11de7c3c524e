package job

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/fvictoor/analisador-contrato/storage/postgres"
	"github.com/fvictoor/analisador-contrato/vars"
)

// StartCronJob agenda o purge diário de análises fora da janela de retenção.
func StartCronJob(repo *postgres.AnaliseRepo) {
	days, err := strconv.Atoi(vars.RetentionDays)
	if err != nil || days <= 0 {
		days = 90
	}

	c := cron.New()

	// todo dia às 2h da manhã
	_, _ = c.AddFunc("0 2 * * *", func() {
		ctx := context.Background()
		cutoff := time.Now().AddDate(0, 0, -days)
		rows, err := repo.PurgeOlderThan(ctx, cutoff)
		if err != nil {
			fmt.Println("[Cron] Error:", err)
		} else {
			fmt.Printf("[Cron] %d análises antigas removidas\n", rows)
		}
	})

	c.Start()
}
