// Copyright 2026 sheetdrive. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package sheetdrive provides command line access to Google Sheets and Google Drive using a Google
service account.

sheetdrive can be used interactively from the command line but is really intended to be run from
scripts and cron jobs that move data between local files and a shared spreadsheet or Drive folder.
The service account key file is supplied with the --credentials option (or the
GOOGLE_APPLICATION_CREDENTIALS environment variable) and the target spreadsheet or file must be
shared with the service account email.

sheetdrive supports the following commands:

  - get, to download a Google Sheets worksheet range to a TSV file
  - put, to store a TSV file to a Google Sheets worksheet range
  - upload, to upload a local file to Google Drive
  - download, to download a Google Drive file by file ID
  - info, to display the metadata for a Google Drive file
  - revisions, to display the revision history for a Google Drive file
*/
package sheetdrive
