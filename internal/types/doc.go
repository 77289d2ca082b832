/*
Package types defines the data structures shared across ispcli.

# Model

The editable model is a tree:

	Document
	  Parameter            top-level input variable
	    Characteristic     orthogonal dimension of variability
	      Partition        equivalence class with a representative value

Order at every level is insertion order and is significant: it drives the
display order, the column letters (A, B, C, ...) and the BCC test numbering.

A Characteristic selects at most one base Partition through BasePartitionID.
The selection is a single optional field, so two bases can never be set at
the same time.

# Derived Rows

TestRow is a Base Choice Coverage test produced by the bcc package. Its
Signature identifies the row independently of its position: "base" for the
base row and "p<param>/c<char>/<partition>" for a row that varies one
characteristic.

# Serialization

All types carry JSON and YAML tags. The JSON form is the snapshot format used
for export and import:

	[
	  {
	    "id": 1001,
	    "name": "Weapon",
	    "characteristics": [
	      {
	        "id": 1101,
	        "name": "Damage",
	        "partitions": [
	          {"id": 1201, "name": "0", "value": "0"},
	          {"id": 1202, "name": "1-10", "value": "5"}
	        ],
	        "basePartitionId": 1202
	      }
	    ]
	  }
	]

basePartitionId is omitted when no base is selected.
*/
package types
