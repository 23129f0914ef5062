// Package prometheusbpint holds the prometheus registry shared by the
// packages of this module.
package prometheusbpint

import (
	"github.com/prometheus/client_golang/prometheus"
)

// GlobalRegistry should be used to register all metrics from this module.
//
// It wraps prometheus.DefaultRegisterer with a constant label, so the metrics
// can be told apart from ones registered by other libraries with the same
// name.
var GlobalRegistry = prometheus.WrapRegistererWith(prometheus.Labels{
	"pppmagic": "v0",
}, prometheus.DefaultRegisterer)
