package booking

import (
	"github.com/fisiovita/clinic-booking/pkg/dbmetrics"
)

// Re-export the dbmetrics executor interfaces for repository consumers
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor
