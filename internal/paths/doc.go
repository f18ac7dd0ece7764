// Provides platform-appropriate paths for mdbuild.
//
// Paths follow XDG conventions on Linux and platform-native conventions on
// macOS and Windows, with "mdbuild" as the subdirectory under each base path.
package paths
