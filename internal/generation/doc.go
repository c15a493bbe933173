// Package generation orchestrates study-material generation against an
// external language model. Given a topic, a study mode and a caller-supplied
// credential it builds the mode's prompt, attaches a response schema for the
// structured modes, submits exactly one request through the Client port,
// validates the raw reply and returns a typed domain.Artifact.
//
// Every failure leaves the package as a *ClassifiedError carrying one of a
// closed set of kinds (missing credential, invalid credential, malformed
// response, transport failure, unsupported mode) and a message meant to be
// shown to the user verbatim.
//
// Mode handling is table driven: each study mode maps to a pipeline of
// prompt template, optional schema and decoder, so adding a mode means adding
// one table entry.
package generation
