// Package sdk holds the machinery behind "fips setup".
//
// Every SDK is an Installer. Most SDKs follow the same sequence, so Recipe
// implements Installer from data: archive URLs per host platform, required
// tools, and the SDK's own post-install commands. Recipe.Setup
//
//  1. checks that the platform has archives and the required tools exist,
//  2. fetches each archive into <workspace>/fips-sdks/<platform>/, through the
//     optional object storage Cache,
//  3. unpacks it (zip, tar.gz),
//  4. runs the post-install commands with the Runner,
//  5. stores an Installation record when a RecordStore is configured.
//
// Errors are returned to the caller; the dispatcher in feature/setup passes
// them on without translation.
package sdk
