// Package analytics turns a cohort of enrolled employees into population-level
// wellness outcomes: clinical change on PHQ-9, GAD-7 and WHO-5, productivity and
// cost savings, engagement, program ROI, and a weekly time series.
//
// Every calculator is a pure function of its inputs. Nothing here performs I/O,
// holds state, or mutates the cohort, so calls are safe to run concurrently for
// different organizations.
package analytics
