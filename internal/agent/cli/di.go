package cli

import (
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/agent/api"
	"github.com/IvanChernomyrdin/go-tabkeeper/internal/agent/config"
)

// для тестов
var (
	NewAPIClient      = api.NewClient
	ReadPassword      = readPassword
	SaveCredentials   = config.Save
	RemoveCredentials = config.Remove
)
