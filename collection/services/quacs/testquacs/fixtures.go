package testquacs

// a trimmed fall 2022 document, crse is numeric like the published data
const Fall2022 = `[
  {
    "code": "CSCI",
    "name": "Computer Science",
    "courses": [
      {
        "crse": 1200,
        "id": "CSCI-1200",
        "title": "DATA STRUCTURES",
        "sections": [
          {"sec": "1", "crn": 1001, "rem": 0, "cap": 30, "act": 30, "title": "DATA STRUCTURES"},
          {"sec": "2", "crn": 1002, "rem": 5, "cap": 30, "act": 25, "title": "DATA STRUCTURES"}
        ]
      },
      {
        "crse": 2300,
        "id": "CSCI-2300",
        "title": "INTRODUCTION TO ALGORITHMS",
        "sections": [
          {"sec": "1", "crn": 1101, "rem": 0, "cap": 40, "act": 40}
        ]
      }
    ]
  },
  {
    "code": "MATH",
    "name": "Mathematics",
    "courses": [
      {
        "crse": "1010",
        "sections": [
          {"sec": "01", "crn": 2001, "rem": 12},
          {"sec": "02", "crn": 2002, "rem": -1},
          {"sec": "03", "crn": 2003, "rem": 1}
        ]
      }
    ]
  }
]`

// one department, one course, one open section
const SingleSection = `[
  {"code": "CSCI", "courses": [
    {"crse": 1200, "sections": [{"sec": "1", "crn": 1001, "rem": 3}]}
  ]}
]`
