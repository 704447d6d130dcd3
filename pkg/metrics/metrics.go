package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResumeGenerations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_generations_total",
			Help: "Total number of generated resumes",
		},
		[]string{"format", "source"},
	)

	ResumeGenerationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_generation_failures_total",
			Help: "Total number of failed resume generations",
		},
		[]string{"reason"},
	)

	ResumeGenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "resume_generation_duration_seconds",
			Help:    "Duration of resume generation in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12),
		},
		[]string{"source"},
	)

	ResumeATSScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "resume_ats_score",
			Help:    "Aggregate ATS score of generated resumes",
			Buckets: prometheus.LinearBuckets(0, 10, 11),
		},
	)

	ResumeUploadsAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "resume_uploads_analyzed_total",
			Help: "Total number of uploaded resumes analyzed",
		},
		[]string{"extension"},
	)
)
