package metrics

import (
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/model"
	"github.com/goodnatureofminers/blockinsight7000-nem/internal/nem/syncerr"
)

const namespace = "blockinsight7000_nem"

// status maps an operation outcome to a label: "success" or the sync error kind.
func status(err error) string {
	if err == nil {
		return "success"
	}
	return syncerr.KindOf(err).String()
}

func networkLabel(network model.Network) string {
	if network == "" {
		return "unknown"
	}
	return string(network)
}
