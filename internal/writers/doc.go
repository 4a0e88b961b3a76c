// Package writers maps output format names to the encoders in package output.
//
// Design:
//   - output owns all presentation knowledge (legacy XML, JSON, text).
//   - border stays domain-only; pipeline stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
