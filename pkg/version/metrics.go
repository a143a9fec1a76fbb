// Copyright (c) 2026, the verkit authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	parseOutcomeOK              = "ok"
	parseOutcomeGrammarMismatch = "grammar_mismatch"
	parseOutcomeFieldValidation = "field_validation"
)

var (
	// Parse metrics
	parseTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verkit_parse_total",
			Help: "Total number of parse attempts by outcome",
		},
		[]string{"outcome"},
	)

	// Compliance check metrics
	complianceChecksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verkit_compliance_checks_total",
			Help: "Total number of compliance checks by kind and result",
		},
		[]string{"check", "compliant"},
	)
)

func observeParse(outcome string) {
	parseTotal.WithLabelValues(outcome).Inc()
}

func observeComplianceCheck(check string, compliant bool) {
	complianceChecksTotal.WithLabelValues(check, strconv.FormatBool(compliant)).Inc()
}
