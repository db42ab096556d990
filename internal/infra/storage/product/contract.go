package product

import "github.com/m04kA/SMC-LaundryService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
