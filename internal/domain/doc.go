// Package domain contains the transport-agnostic types of the admin workflow
// engine: the inbound Request, the Result variants returned by every action,
// the preview state machine, batch request normalization, persistence
// outcomes and the error taxonomy. Resource entities live in sub-packages
// (domain/article).
package domain
