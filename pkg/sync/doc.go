/*
The sync package implements the pipelines that move a project between the
local filesystem and the remote content API.

A push collects the local project files, orders them according to the
configured push order, and replaces the remote project's full content in a
single call. The remote side compiles what it receives, so a push can be
rejected; when the rejection carries a located syntax error, the pipeline
resolves it against the pushed file set and renders the offending source.

A pull fetches the remote file set and materializes each record under the
source directory, creating parent directories as needed. Writes fan out over
a bounded worker pool. There is no rollback: a pull that fails partway
leaves the files it already wrote.

Status runs the local collection and the remote fetch concurrently, then
reports the files a push would upload.
*/
package sync
