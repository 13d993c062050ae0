package reservation

import "github.com/xalexyi/prenotazioni-ai/pkg/txmanager"

// DBExecutor интерфейс для работы с БД (обычное соединение или транзакция)
type DBExecutor = txmanager.Executor
