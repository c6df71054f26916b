// Package transfernotify provides transfer-lifecycle hooks for
// publishing pipelines that upload artifacts to an object store.
//
// Its central piece is PresignedURLNotifier, a TransferListener that
// reacts to completed transfers by requesting a time-limited presigned
// URL for the uploaded object from a pluggable URLSigner and reporting
// it through the logging channel. Issuance is controlled by a single
// non-negative expiration window in hours; a zero window disables URL
// generation and the notifier reports that instead.
//
// Storage collaborators (e.g., S3-compatible services, in-memory for
// tests) are provided under subpackages. The pipeline side is modeled
// by Dispatcher, which fans transfer events out to registered
// listeners in order.
package transfernotify
