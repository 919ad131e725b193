package mesh

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	causeLabel = "cause"

	causeWhitney  = "whitney"
	causeBalance  = "balance"
	causeEqualize = "equalize"
)

var (
	meshCellsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skera_mesh_cells_created",
		Help: "The number of cells allocated across all mesh builds.",
	})

	meshSubdivisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skera_mesh_subdivisions",
		Help: "The number of cell subdivisions by refinement cause.",
	}, []string{
		causeLabel,
	})

	meshBalancePasses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skera_mesh_balance_passes",
		Help: "The number of 2:1 balance passes run.",
	})

	meshBuilds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "skera_mesh_builds",
		Help: "The number of completed mesh builds.",
	})

	meshLeafCells = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "skera_mesh_leaf_cells",
		Help: "The number of leaf cells produced by the last mesh build.",
	})
)

func instrumentCellCreated() {
	meshCellsCreated.Inc()
}

func instrumentSubdivision(cause string) {
	meshSubdivisions.With(prometheus.Labels{
		causeLabel: cause,
	}).Inc()
}

func instrumentBalancePass() {
	meshBalancePasses.Inc()
}

func instrumentBuild(leafCount int) {
	meshBuilds.Inc()
	meshLeafCells.Set(float64(leafCount))
}
