/*
The project package decides which local files belong to a script project, and
how they map to the logical files tracked by the remote content API.

A local file is part of the project when it survives the ignore patterns and
its extension classifies to one of the logical file types. Its remote name is
its path relative to the source directory with the extension stripped, always
using forward slashes. The manifest file is special: `appsscript.json` always
classifies as the manifest and always maps to the remote name `appsscript`,
no matter how the extension table is configured.

Collection deals only with files. Empty directories are never part of a
project, which lets pulls materialize into directories that contain unrelated
files without disturbing them.
*/
package project
