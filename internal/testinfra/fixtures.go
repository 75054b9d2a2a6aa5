// NEO Explorer - Near-Earth Object Browser
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/neoexplorer

package testinfra

// Date range covered by FeedJSON.
const (
	FeedStartDate = "2015-09-07"
	FeedEndDate   = "2015-09-08"
)

// FeedJSON is a two-day NeoWs feed response. The day keys are deliberately
// out of order; 2015-09-07 must be projected first.
const FeedJSON = `{
  "links": {
    "next": "http://api.nasa.gov/neo/rest/v1/feed?start_date=2015-09-09&end_date=2015-09-10&detailed=false&api_key=DEMO_KEY",
    "prev": "http://api.nasa.gov/neo/rest/v1/feed?start_date=2015-09-05&end_date=2015-09-06&detailed=false&api_key=DEMO_KEY",
    "self": "http://api.nasa.gov/neo/rest/v1/feed?start_date=2015-09-07&end_date=2015-09-08&detailed=false&api_key=DEMO_KEY"
  },
  "element_count": 2,
  "near_earth_objects": {
    "2015-09-08": [
      {
        "links": {"self": "http://api.nasa.gov/neo/rest/v1/neo/2465633?api_key=DEMO_KEY"},
        "id": "2465633",
        "neo_reference_id": "2465633",
        "name": "465633 (2009 JR5)",
        "nasa_jpl_url": "https://ssd.jpl.nasa.gov/tools/sbdb_lookup.html#/?sstr=2465633",
        "absolute_magnitude_h": 20.44,
        "estimated_diameter": {
          "kilometers": {"estimated_diameter_min": 0.2170475943, "estimated_diameter_max": 0.4853331752},
          "meters": {"estimated_diameter_min": 217.0475943071, "estimated_diameter_max": 485.3331752235},
          "miles": {"estimated_diameter_min": 0.1348670807, "estimated_diameter_max": 0.3015719604},
          "feet": {"estimated_diameter_min": 712.0984293066, "estimated_diameter_max": 1592.3004946003}
        },
        "is_potentially_hazardous_asteroid": true,
        "close_approach_data": [
          {
            "close_approach_date": "2015-09-08",
            "close_approach_date_full": "2015-Sep-08 20:28",
            "epoch_date_close_approach": 1441744080000,
            "relative_velocity": {
              "kilometers_per_second": "18.1279360862",
              "kilometers_per_hour": "65260.5699103704",
              "miles_per_hour": "40550.3802312521"
            },
            "miss_distance": {
              "astronomical": "0.3027469457",
              "lunar": "117.7685618773",
              "kilometers": "45290298.225725659",
              "miles": "28142086.3515817342"
            },
            "orbiting_body": "Earth"
          }
        ],
        "is_sentry_object": false
      }
    ],
    "2015-09-07": [
      {
        "links": {"self": "http://api.nasa.gov/neo/rest/v1/neo/3726710?api_key=DEMO_KEY"},
        "id": "3726710",
        "neo_reference_id": "3726710",
        "name": "(2015 RC)",
        "nasa_jpl_url": "https://ssd.jpl.nasa.gov/tools/sbdb_lookup.html#/?sstr=3726710",
        "absolute_magnitude_h": 24.3,
        "estimated_diameter": {
          "kilometers": {"estimated_diameter_min": 0.0366906138, "estimated_diameter_max": 0.0820427065},
          "meters": {"estimated_diameter_min": 36.6906137531, "estimated_diameter_max": 82.0427064882},
          "miles": {"estimated_diameter_min": 0.0227984834, "estimated_diameter_max": 0.0509789586},
          "feet": {"estimated_diameter_min": 120.3760332259, "estimated_diameter_max": 269.1689931548}
        },
        "is_potentially_hazardous_asteroid": false,
        "close_approach_data": [
          {
            "close_approach_date": "2015-09-07",
            "close_approach_date_full": "2015-Sep-07 08:15",
            "epoch_date_close_approach": 1441613700000,
            "relative_velocity": {
              "kilometers_per_second": "19.4850295284",
              "kilometers_per_hour": "70146.106302123",
              "miles_per_hour": "43586.0625520093"
            },
            "miss_distance": {
              "astronomical": "0.0269252677",
              "lunar": "10.4739291353",
              "kilometers": "4027962.697099799",
              "miles": "2502859.7511131677"
            },
            "orbiting_body": "Earth"
          }
        ],
        "is_sentry_object": false
      }
    ]
  }
}`

// LookupID is the reference id of LookupJSON.
const LookupID = "2465633"

// LookupJSON is a NeoWs lookup response with two close approaches.
const LookupJSON = `{
  "links": {"self": "http://api.nasa.gov/neo/rest/v1/neo/2465633?api_key=DEMO_KEY"},
  "id": "2465633",
  "neo_reference_id": "2465633",
  "name": "465633 (2009 JR5)",
  "designation": "465633",
  "nasa_jpl_url": "https://ssd.jpl.nasa.gov/tools/sbdb_lookup.html#/?sstr=2465633",
  "absolute_magnitude_h": 20.44,
  "estimated_diameter": {
    "kilometers": {"estimated_diameter_min": 0.2170475943, "estimated_diameter_max": 0.4853331752},
    "meters": {"estimated_diameter_min": 217.0475943071, "estimated_diameter_max": 485.3331752235},
    "miles": {"estimated_diameter_min": 0.1348670807, "estimated_diameter_max": 0.3015719604},
    "feet": {"estimated_diameter_min": 712.0984293066, "estimated_diameter_max": 1592.3004946003}
  },
  "is_potentially_hazardous_asteroid": true,
  "close_approach_data": [
    {
      "close_approach_date": "1900-06-01",
      "close_approach_date_full": "1900-Jun-01 14:20",
      "epoch_date_close_approach": -2195545200000,
      "relative_velocity": {
        "kilometers_per_second": "21.7092475656",
        "kilometers_per_hour": "78153.2912362558",
        "miles_per_hour": "48561.2949616817"
      },
      "miss_distance": {
        "astronomical": "0.4858774955",
        "lunar": "189.0063457495",
        "kilometers": "72686446.131706385",
        "miles": "45165179.223670793"
      },
      "orbiting_body": "Earth"
    },
    {
      "close_approach_date": "2015-09-08",
      "close_approach_date_full": "2015-Sep-08 20:28",
      "epoch_date_close_approach": 1441744080000,
      "relative_velocity": {
        "kilometers_per_second": "18.1279360862",
        "kilometers_per_hour": "65260.5699103704",
        "miles_per_hour": "40550.3802312521"
      },
      "miss_distance": {
        "astronomical": "0.3027469457",
        "lunar": "117.7685618773",
        "kilometers": "45290298.225725659",
        "miles": "28142086.3515817342"
      },
      "orbiting_body": "Earth"
    }
  ],
  "orbital_data": {
    "orbit_id": "635",
    "orbit_determination_date": "2022-04-13 07:07:09",
    "first_observation_date": "1990-04-21",
    "last_observation_date": "2022-04-12",
    "data_arc_in_days": 11679,
    "observations_used": 162,
    "orbit_uncertainty": "0",
    "minimum_orbit_intersection": ".0000082603845",
    "jupiter_tisserand_invariant": "4.068",
    "epoch_osculation": "2459800.5",
    "eccentricity": "0.675827388781843",
    "semi_major_axis": "1.886450834550669",
    "inclination": "3.953546969678739",
    "ascending_node_longitude": "198.4672592974525",
    "orbital_period": "946.3653167983496",
    "perihelion_distance": ".6115343852613018",
    "perihelion_argument": "263.9432002806277",
    "aphelion_distance": "3.161367283840036",
    "perihelion_time": "2459592.797062278685",
    "mean_anomaly": "79.01640580950248",
    "mean_motion": ".3804024061775624",
    "equinox": "J2000",
    "orbit_class": {
      "orbit_class_type": "APO",
      "orbit_class_description": "Near-Earth asteroid orbits which cross the Earth's orbit similar to that of 1862 Apollo",
      "orbit_class_range": "a (semi-major axis) > 1.0 AU; q (perihelion) < 1.017 AU"
    }
  },
  "is_sentry_object": false
}`

// EmptyApproachFeedJSON is a feed whose only record has no close approaches.
const EmptyApproachFeedJSON = `{
  "links": {"next": "", "previous": "", "self": ""},
  "element_count": 1,
  "near_earth_objects": {
    "2015-09-08": [
      {
        "id": "1",
        "neo_reference_id": "1",
        "name": "(broken)",
        "estimated_diameter": {"kilometers": {"estimated_diameter_min": 0.1, "estimated_diameter_max": 0.2}},
        "is_potentially_hazardous_asteroid": false,
        "close_approach_data": []
      }
    ]
  }
}`
