// Package domain contains the study-material value objects of the
// application: study modes, topics and the three artifact types a generation
// request can produce. It is independent of any specific language model
// provider or delivery mechanism.
package domain
